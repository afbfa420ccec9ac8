package orgunit

import (
	"context"
	"errors"
	"fmt"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type OrgUnitService struct {
	db                *gorm.DB
	orgUnitRepository *OrgUnitRepository
}

func NewOrgUnitService(db *gorm.DB, orgUnitRepository *OrgUnitRepository) *OrgUnitService {
	return &OrgUnitService{
		db:                db,
		orgUnitRepository: orgUnitRepository,
	}
}

// LoadTree fetches every unit and assembles the forest. selectedID is an
// optional deep-link id resolved after the load; an unknown id is a silent
// no-op (Selected stays nil).
func (s *OrgUnitService) LoadTree(ctx context.Context, selectedID string) (*TreeResponse, error) {
	units, err := s.orgUnitRepository.ListAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("조직도 조회 실패: %w", err)
	}

	forest := BuildForest(units)

	response := &TreeResponse{Tree: forest}
	if selectedID != "" {
		response.Selected = FindNode(forest, selectedID)
	}
	return response, nil
}

// ListByType returns a flat list of units of one type.
func (s *OrgUnitService) ListByType(ctx context.Context, unitType string) ([]model.OrgUnit, error) {
	if !model.IsValidOrgType(unitType) {
		return nil, fmt.Errorf("조직 유형 %q: %w", unitType, ErrOrgUnitInvalidType)
	}

	units, err := s.orgUnitRepository.ListByType(ctx, s.db, unitType)
	if err != nil {
		return nil, fmt.Errorf("조직 목록 조회 실패: %w", err)
	}
	return units, nil
}

// Create inserts a unit and, only after the write succeeds, re-fetches and
// rebuilds the whole forest. There is no incremental patching of the tree.
func (s *OrgUnitService) Create(ctx context.Context, request *CreateOrgUnitRequest) (*TreeResponse, error) {
	log := logger.FromContext(ctx)

	if !model.IsValidOrgType(request.Type) {
		return nil, fmt.Errorf("조직 유형 %q: %w", request.Type, ErrOrgUnitInvalidType)
	}

	unit := &model.OrgUnit{
		Name:     request.Name,
		Type:     request.Type,
		ParentID: request.ParentID,
	}
	if request.SortOrder != nil {
		unit.SortOrder = *request.SortOrder
	}

	if err := s.orgUnitRepository.Create(ctx, s.db, unit); err != nil {
		log.Error("조직 생성 실패", "name", request.Name, "error", err)
		return nil, fmt.Errorf("조직 생성 실패: %w", err)
	}

	log.Info("조직 생성됨", "org_unit_id", unit.ID, "name", unit.Name, "type", unit.Type)
	return s.LoadTree(ctx, unit.ID)
}

// Update renames or re-types a unit, then reloads the forest.
func (s *OrgUnitService) Update(ctx context.Context, id string, request *UpdateOrgUnitRequest) (*TreeResponse, error) {
	log := logger.FromContext(ctx)

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Type != nil {
		if !model.IsValidOrgType(*request.Type) {
			return nil, fmt.Errorf("조직 유형 %q: %w", *request.Type, ErrOrgUnitInvalidType)
		}
		fields["type"] = *request.Type
	}

	if len(fields) > 0 {
		if err := s.orgUnitRepository.UpdateFields(ctx, s.db, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("조직을 찾을 수 없습니다 id=%s %w", id, ErrOrgUnitNotFound)
			}
			log.Error("조직 수정 실패", "org_unit_id", id, "error", err)
			return nil, fmt.Errorf("조직 수정 실패: %w", err)
		}
	}

	return s.LoadTree(ctx, id)
}

// Delete removes a unit and reloads the forest. The delete does not cascade;
// orphaned children surface as roots in the rebuilt tree.
func (s *OrgUnitService) Delete(ctx context.Context, id string) (*TreeResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.orgUnitRepository.Delete(ctx, s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("조직을 찾을 수 없습니다 id=%s %w", id, ErrOrgUnitNotFound)
		}
		log.Error("조직 삭제 실패", "org_unit_id", id, "error", err)
		return nil, fmt.Errorf("조직 삭제 실패: %w", err)
	}

	log.Info("조직 삭제됨", "org_unit_id", id)

	// 삭제된 노드는 더 이상 선택 대상이 아니다
	return s.LoadTree(ctx, "")
}
