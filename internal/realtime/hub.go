// Package realtime provides unit-scoped change notifications for membership
// writes, so that multiple admin clients editing the same unit converge by
// re-fetching on every event.
package realtime

import (
	"sync"
)

// Operations carried by an Event.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Event describes a single membership change scoped to one org unit.
type Event struct {
	OrgUnitID string `json:"orgUnitId"`
	Op        string `json:"op"`
	MemberID  string `json:"memberId"`
}

// Subscription receives events for one org unit until Unsubscribe is called.
type Subscription struct {
	id        uint64
	orgUnitID string
	C         chan Event
}

// Hub fan-outs membership change events to unit-scoped subscribers.
// 발행자는 절대 블로킹되지 않는다: 버퍼가 가득 찬 구독자는 해당 이벤트를 놓친다.
// (놓친 쪽은 다음 이벤트 수신 시 전체 재조회로 수렴한다.)
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]*Subscription // orgUnitID -> subscription set
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[uint64]*Subscription),
	}
}

const subscriptionBuffer = 16

// Subscribe registers interest in membership changes of one org unit.
func (h *Hub) Subscribe(orgUnitID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		id:        h.nextID,
		orgUnitID: orgUnitID,
		C:         make(chan Event, subscriptionBuffer),
	}

	if h.subs[orgUnitID] == nil {
		h.subs[orgUnitID] = make(map[uint64]*Subscription)
	}
	h.subs[orgUnitID][sub.id] = sub

	return sub
}

// Unsubscribe tears down a subscription and closes its channel.
// 구독 범위(조직)가 바뀔 때 반드시 호출해서 잘못된 범위의 알림이
// 남아있지 않도록 한다.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[sub.orgUnitID]
	if !ok {
		return
	}
	if _, ok := set[sub.id]; !ok {
		return
	}

	delete(set, sub.id)
	if len(set) == 0 {
		delete(h.subs, sub.orgUnitID)
	}
	close(sub.C)
}

// Publish delivers an event to every subscriber of the event's org unit.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs[event.OrgUnitID] {
		select {
		case sub.C <- event:
		default:
			// 느린 구독자는 건너뛴다
		}
	}
}

// SubscriberCount returns the number of active subscriptions for a unit.
func (h *Hub) SubscriberCount(orgUnitID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[orgUnitID])
}
