package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type AttendanceService struct {
	db                   *gorm.DB
	attendanceRepository *AttendanceRepository
}

func NewAttendanceService(db *gorm.DB, attendanceRepository *AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		db:                   db,
		attendanceRepository: attendanceRepository,
	}
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("날짜 %q: %w", date, ErrInvalidDate)
	}
	return nil
}

// GetByDate returns a unit's records for one day plus the status summary.
func (s *AttendanceService) GetByDate(ctx context.Context, orgUnitID, date string) (*DayResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepository.ListByUnitAndDate(ctx, s.db, orgUnitID, date)
	if err != nil {
		return nil, fmt.Errorf("출석 조회 실패: %w", err)
	}

	summary := DaySummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.AttendancePresent:
			summary.Present++
		case model.AttendanceAbsent:
			summary.Absent++
		case model.AttendanceLate:
			summary.Late++
		}
	}

	return &DayResponse{Records: records, Summary: summary}, nil
}

// Upsert writes a record keyed by (unit, member, date): update when one
// exists, insert otherwise. 복합 유니크 제약 없이도 안전하도록
// select-then-write 전략을 쓴다.
func (s *AttendanceService) Upsert(ctx context.Context, orgUnitID string, request *UpsertRequest) (*model.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	if !model.IsValidAttendanceStatus(request.Status) {
		return nil, fmt.Errorf("출석 상태 %q: %w", request.Status, ErrInvalidStatus)
	}
	if err := validateDate(request.Date); err != nil {
		return nil, err
	}

	existing, err := s.attendanceRepository.FindByKey(ctx, s.db, orgUnitID, request.MemberID, request.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("출석 조회 실패: %w", err)
	}

	if existing != nil {
		if err := s.attendanceRepository.UpdateStatus(ctx, s.db, existing.ID, request.Status, request.Note); err != nil {
			log.Error("출석 수정 실패", "org_unit_id", orgUnitID, "member_id", request.MemberID, "error", err)
			return nil, fmt.Errorf("출석 수정 실패: %w", err)
		}
		existing.Status = request.Status
		existing.Note = request.Note
		return existing, nil
	}

	record := &model.AttendanceRecord{
		OrgUnitID: orgUnitID,
		MemberID:  request.MemberID,
		Date:      request.Date,
		Status:    request.Status,
		Note:      request.Note,
	}
	if err := s.attendanceRepository.Create(ctx, s.db, record); err != nil {
		log.Error("출석 저장 실패", "org_unit_id", orgUnitID, "member_id", request.MemberID, "error", err)
		return nil, fmt.Errorf("출석 저장 실패: %w", err)
	}

	return record, nil
}
