package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/position"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/realtime"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/database"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/logger"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type RosterService struct {
	db               *gorm.DB
	rosterRepository *RosterRepository
	hub              *realtime.Hub
}

func NewRosterService(db *gorm.DB, rosterRepository *RosterRepository, hub *realtime.Hub) *RosterService {
	return &RosterService{
		db:               db,
		rosterRepository: rosterRepository,
		hub:              hub,
	}
}

// ListMembers returns a unit's active roster sorted by name under Korean
// collation, each row carrying the parsed {part, job} of its position.
func (s *RosterService) ListMembers(ctx context.Context, orgUnitID string) (*MemberListResponse, error) {
	memberships, members, err := s.rosterRepository.ListActiveMemberships(ctx, s.db, orgUnitID)
	if err != nil {
		return nil, fmt.Errorf("구성원 조회 실패: %w", err)
	}

	memberByID := make(map[string]model.Member, len(members))
	for _, m := range members {
		memberByID[m.ID] = m
	}

	summaries := make([]MemberSummary, 0, len(memberships))
	for _, ms := range memberships {
		m, ok := memberByID[ms.MemberID]
		if !ok {
			// 멤버 행이 지워진 고아 멤버십은 건너뛴다
			continue
		}

		summary := MemberSummary{
			ID:       m.ID,
			Name:     m.Name,
			Role:     m.Role,
			Position: ms.Position,
			Parsed:   position.Parse(ms.Position),
		}
		if m.Phone != nil {
			summary.Phone = *m.Phone
		}
		summaries = append(summaries, summary)
	}

	// Collator는 내부 버퍼 때문에 동시 사용이 안 되므로 호출마다 만든다
	col := collate.New(language.Korean)
	sort.SliceStable(summaries, func(i, j int) bool {
		return col.CompareString(summaries[i].Name, summaries[j].Name) < 0
	})

	return &MemberListResponse{Members: summaries, Total: len(summaries)}, nil
}

// CreateInUnit creates a member and links them to the unit. The original
// two-phase write runs inside one transaction here, so a failed link does
// not leave an orphaned member behind.
func (s *RosterService) CreateInUnit(ctx context.Context, orgUnitID string, request *CreateMemberRequest) (*model.Member, error) {
	log := logger.FromContext(ctx)

	member := &model.Member{
		Name: request.Name,
		Role: model.RoleMember,
	}
	if request.Phone != "" {
		member.Phone = &request.Phone
	}
	if request.Birthday != "" {
		member.Birthday = &request.Birthday
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.rosterRepository.CreateMember(ctx, tx, member); err != nil {
			return fmt.Errorf("성도 생성 실패: %w", err)
		}

		membership := &model.Membership{
			MemberID:  member.ID,
			OrgUnitID: orgUnitID,
			Position:  request.Position,
			IsActive:  true,
		}
		if err := s.rosterRepository.CreateMembership(ctx, tx, membership); err != nil {
			return fmt.Errorf("소속 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("성도 등록 실패", "org_unit_id", orgUnitID, "error", err)
		return nil, err
	}

	log.Info("성도 등록됨", "org_unit_id", orgUnitID, "member_id", member.ID)
	s.hub.Publish(realtime.Event{OrgUnitID: orgUnitID, Op: realtime.OpInsert, MemberID: member.ID})

	return member, nil
}

// UpdateInUnit updates member fields and the membership's position.
func (s *RosterService) UpdateInUnit(ctx context.Context, orgUnitID, memberID string, request *UpdateMemberRequest) error {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		fields := map[string]interface{}{"name": request.Name}
		if request.Phone != "" {
			fields["phone"] = request.Phone
		}
		if request.Birthday != "" {
			fields["birthday"] = request.Birthday
		}

		if err := s.rosterRepository.UpdateMember(ctx, tx, memberID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("성도를 찾을 수 없습니다 id=%s %w", memberID, ErrMemberNotFound)
			}
			return fmt.Errorf("성도 수정 실패: %w", err)
		}

		if err := s.rosterRepository.UpdateMembershipPosition(ctx, tx, orgUnitID, memberID, request.Position); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("소속을 찾을 수 없습니다 member=%s unit=%s %w", memberID, orgUnitID, ErrMembershipNotFound)
			}
			return fmt.Errorf("소속 수정 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("성도 수정 실패", "org_unit_id", orgUnitID, "member_id", memberID, "error", err)
		return err
	}

	s.hub.Publish(realtime.Event{OrgUnitID: orgUnitID, Op: realtime.OpUpdate, MemberID: memberID})
	return nil
}

// RemoveFromUnit deletes the membership only; the member record survives
// (and may stay linked to other units).
func (s *RosterService) RemoveFromUnit(ctx context.Context, orgUnitID, memberID string) error {
	log := logger.FromContext(ctx)

	if err := s.rosterRepository.DeleteMembership(ctx, s.db, orgUnitID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("소속을 찾을 수 없습니다 member=%s unit=%s %w", memberID, orgUnitID, ErrMembershipNotFound)
		}
		log.Error("명단 삭제 실패", "org_unit_id", orgUnitID, "member_id", memberID, "error", err)
		return fmt.Errorf("명단 삭제 실패: %w", err)
	}

	log.Info("명단에서 삭제됨", "org_unit_id", orgUnitID, "member_id", memberID)
	s.hub.Publish(realtime.Event{OrgUnitID: orgUnitID, Op: realtime.OpDelete, MemberID: memberID})
	return nil
}

// Search finds members by name fragment, each hit with its affiliations.
func (s *RosterService) Search(ctx context.Context, query string) (*SearchResponse, error) {
	members, err := s.rosterRepository.SearchMembersByName(ctx, s.db, query)
	if err != nil {
		return nil, fmt.Errorf("성도 검색 실패: %w", err)
	}

	hits := make([]SearchHit, 0, len(members))
	for _, m := range members {
		hit := SearchHit{
			ID:           m.ID,
			Name:         m.Name,
			Role:         m.Role,
			Affiliations: make([]Affiliation, 0, len(m.Memberships)),
		}
		if m.Phone != nil {
			hit.Phone = *m.Phone
		}
		for _, ms := range m.Memberships {
			hit.Affiliations = append(hit.Affiliations, Affiliation{
				OrgUnitID:   ms.OrgUnitID,
				OrgUnitName: ms.OrgUnit.Name,
				Position:    ms.Position,
			})
		}
		hits = append(hits, hit)
	}

	return &SearchResponse{Members: hits}, nil
}
