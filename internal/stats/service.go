// Package stats derives per-unit and grand-total composition counts by
// joining unit rosters with parsed position labels.
package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/orgunit"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/position"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/roster"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MemberLister fetches one unit's active roster. roster.RosterService
// satisfies it; tests substitute failing or fixed-data implementations.
type MemberLister interface {
	ListMembers(ctx context.Context, orgUnitID string) (*roster.MemberListResponse, error)
}

// choralMarker: 이름에 이 토큰이 들어간 위원회는 음악 조직으로 분류한다
// (예: "찬양대 운영 위원회"). 나머지 위원회는 행정 조직.
const choralMarker = "찬양"

type StatsService struct {
	db                *gorm.DB
	orgUnitRepository *orgunit.OrgUnitRepository
	members           MemberLister
}

func NewStatsService(db *gorm.DB, orgUnitRepository *orgunit.OrgUnitRepository, members MemberLister) *StatsService {
	return &StatsService{
		db:                db,
		orgUnitRepository: orgUnitRepository,
		members:           members,
	}
}

func isChoral(unit model.OrgUnit) bool {
	switch unit.Type {
	case model.OrgTypeChoir, model.OrgTypeTeam:
		return true
	case model.OrgTypeCommittee:
		return strings.Contains(unit.Name, choralMarker)
	}
	return false
}

func (s *StatsService) choralUnits(ctx context.Context) ([]model.OrgUnit, error) {
	choirs, err := s.orgUnitRepository.ListByType(ctx, s.db, model.OrgTypeChoir)
	if err != nil {
		return nil, err
	}
	teams, err := s.orgUnitRepository.ListByType(ctx, s.db, model.OrgTypeTeam)
	if err != nil {
		return nil, err
	}
	committees, err := s.orgUnitRepository.ListByType(ctx, s.db, model.OrgTypeCommittee)
	if err != nil {
		return nil, err
	}

	units := make([]model.OrgUnit, 0, len(choirs)+len(teams))
	units = append(units, choirs...)
	units = append(units, teams...)
	for _, c := range committees {
		if isChoral(c) {
			units = append(units, c)
		}
	}
	return units, nil
}

func (s *StatsService) administrativeUnits(ctx context.Context) ([]model.OrgUnit, error) {
	committees, err := s.orgUnitRepository.ListByType(ctx, s.db, model.OrgTypeCommittee)
	if err != nil {
		return nil, err
	}

	units := make([]model.OrgUnit, 0, len(committees))
	for _, c := range committees {
		if !isChoral(c) {
			units = append(units, c)
		}
	}
	return units, nil
}

// ChoralReport computes per-unit vocal part counts for every choral unit,
// plus a column-wise grand total. Per-unit roster fetches run concurrently;
// any single fetch failure aborts the whole report (no partial table).
func (s *StatsService) ChoralReport(ctx context.Context) (*ChoralReport, error) {
	units, err := s.choralUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("음악 조직 목록 조회 실패: %w", err)
	}

	rows := make([]ChoralRow, len(units))

	g, gctx := errgroup.WithContext(ctx)
	for i, unit := range units {
		g.Go(func() error {
			list, err := s.members.ListMembers(gctx, unit.ID)
			if err != nil {
				return fmt.Errorf("%s 구성원 조회 실패: %w", unit.Name, err)
			}
			rows[i] = choralRow(unit, list.Members)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	grand := ChoralRow{Name: "합계"}
	for _, row := range rows {
		grand.Soprano += row.Soprano
		grand.Alto += row.Alto
		grand.Tenor += row.Tenor
		grand.Bass += row.Bass
		grand.Total += row.Total
	}

	return &ChoralReport{Units: rows, GrandTotal: grand}, nil
}

func choralRow(unit model.OrgUnit, members []roster.MemberSummary) ChoralRow {
	row := ChoralRow{OrgUnitID: unit.ID, Name: unit.Name, Total: len(members)}
	for _, m := range members {
		switch m.Parsed.Part {
		case "소프라노":
			row.Soprano++
		case "알토":
			row.Alto++
		case "테너":
			row.Tenor++
		case "베이스":
			row.Bass++
		}
	}
	return row
}

// CommitteeReport computes per-unit job role counts for administrative
// committees, with the same fan-out and all-or-nothing semantics.
func (s *StatsService) CommitteeReport(ctx context.Context) (*CommitteeReport, error) {
	units, err := s.administrativeUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("위원회 목록 조회 실패: %w", err)
	}

	rows := make([]CommitteeRow, len(units))

	g, gctx := errgroup.WithContext(ctx)
	for i, unit := range units {
		g.Go(func() error {
			list, err := s.members.ListMembers(gctx, unit.ID)
			if err != nil {
				return fmt.Errorf("%s 구성원 조회 실패: %w", unit.Name, err)
			}
			rows[i] = committeeRow(unit, list.Members)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	grand := CommitteeRow{Name: "합계", Counts: emptyCounts()}
	for _, row := range rows {
		for _, role := range CommitteeRoles {
			grand.Counts[role] += row.Counts[role]
		}
		grand.Total += row.Total
	}

	return &CommitteeReport{Units: rows, GrandTotal: grand}, nil
}

func committeeRow(unit model.OrgUnit, members []roster.MemberSummary) CommitteeRow {
	row := CommitteeRow{OrgUnitID: unit.ID, Name: unit.Name, Counts: emptyCounts(), Total: len(members)}
	for _, m := range members {
		job := position.Parse(m.Position).Job
		if _, ok := row.Counts[job]; ok {
			row.Counts[job]++
		}
	}
	return row
}

func emptyCounts() map[string]int {
	counts := make(map[string]int, len(CommitteeRoles))
	for _, role := range CommitteeRoles {
		counts[role] = 0
	}
	return counts
}
