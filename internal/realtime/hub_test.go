package realtime_test

import (
	"testing"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesUnitSubscribers(t *testing.T) {
	// Given: 같은 조직을 구독하는 두 구독자
	hub := realtime.NewHub()
	sub1 := hub.Subscribe("unit-1")
	sub2 := hub.Subscribe("unit-1")

	// When: 해당 조직으로 이벤트 발행
	event := realtime.Event{OrgUnitID: "unit-1", Op: realtime.OpInsert, MemberID: "m-1"}
	hub.Publish(event)

	// Then: 두 구독자 모두 수신
	assert.Equal(t, event, <-sub1.C)
	assert.Equal(t, event, <-sub2.C)
}

func TestHub_ScopedByOrgUnit(t *testing.T) {
	// Given: 서로 다른 조직의 구독자
	hub := realtime.NewHub()
	sub := hub.Subscribe("unit-1")
	other := hub.Subscribe("unit-2")

	// When: unit-1에만 발행
	hub.Publish(realtime.Event{OrgUnitID: "unit-1", Op: realtime.OpDelete, MemberID: "m-1"})

	// Then: unit-2 구독자는 아무것도 받지 않는다
	require.Len(t, sub.C, 1)
	assert.Len(t, other.C, 0)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := realtime.NewHub()
	sub := hub.Subscribe("unit-1")

	hub.Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount("unit-1"))

	// 해지 후 발행은 아무 일도 하지 않는다
	hub.Publish(realtime.Event{OrgUnitID: "unit-1", Op: realtime.OpUpdate, MemberID: "m-1"})

	// 중복 해지도 안전하다
	hub.Unsubscribe(sub)
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	// Given: 버퍼보다 많은 이벤트
	hub := realtime.NewHub()
	sub := hub.Subscribe("unit-1")

	// When: 소비 없이 대량 발행해도 Publish는 반환된다
	for i := 0; i < 100; i++ {
		hub.Publish(realtime.Event{OrgUnitID: "unit-1", Op: realtime.OpUpdate, MemberID: "m-1"})
	}

	// Then: 버퍼만큼만 쌓이고 나머지는 드랍
	assert.Equal(t, 16, len(sub.C))
}
