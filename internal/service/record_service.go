package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/oklog/ulid/v2"
	log "github.com/sirupsen/logrus"
)

// LiftResult is the outcome of logging a lift
type LiftResult struct {
	Lift      *domain.LiftLog        `json:"lift"`
	Record    *domain.PersonalRecord `json:"record,omitempty"` // current record for the exercise
	NewRecord bool                   `json:"new_record"`
}

// RecordService keeps personal records in step with the lift history
type RecordService struct {
	liftRepo     domain.LiftLogRepository
	recordRepo   domain.PersonalRecordRepository
	exerciseRepo domain.ExerciseRepository
}

func NewRecordService(
	liftRepo domain.LiftLogRepository,
	recordRepo domain.PersonalRecordRepository,
	exerciseRepo domain.ExerciseRepository,
) *RecordService {
	return &RecordService{
		liftRepo:     liftRepo,
		recordRepo:   recordRepo,
		exerciseRepo: exerciseRepo,
	}
}

// generateULID creates a new ULID string
func generateULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// LogLift stores a lift for memberID and updates the member's record for the
// exercise when the lift improves it. Replaying a lift with a known ClientID
// returns the stored lift without writing anything.
func (s *RecordService) LogLift(ctx context.Context, memberID string, lift *domain.LiftLog) (*LiftResult, error) {
	if lift.ClientID != "" {
		existing, err := s.liftRepo.GetByClientID(ctx, lift.ClientID)
		if err == nil {
			if existing.MemberID != memberID {
				return nil, domain.ErrForbidden
			}
			record, err := s.recordRepo.GetByMemberAndExercise(ctx, memberID, existing.ExerciseID)
			if err != nil {
				return nil, fmt.Errorf("failed to load record: %w", err)
			}
			return &LiftResult{Lift: existing, Record: record}, nil
		}
		if !errors.Is(err, domain.ErrLiftNotFound) {
			return nil, fmt.Errorf("failed to check client id: %w", err)
		}
	} else {
		lift.ClientID = generateULID()
	}

	if err := lift.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.exerciseRepo.GetByID(ctx, lift.ExerciseID); err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return nil, fmt.Errorf("%w: unknown exercise %q", domain.ErrInvalidInput, lift.ExerciseID)
		}
		return nil, fmt.Errorf("failed to verify exercise: %w", err)
	}

	lift.MemberID = memberID
	if lift.PerformedAt.IsZero() {
		lift.PerformedAt = time.Now().UTC()
	}
	if err := s.liftRepo.Create(ctx, lift); err != nil {
		return nil, err
	}

	result := &LiftResult{Lift: lift}
	if lift.Reps == 0 {
		// a failed attempt is history, never a record
		record, err := s.recordRepo.GetByMemberAndExercise(ctx, memberID, lift.ExerciseID)
		if err != nil {
			return nil, fmt.Errorf("failed to load record: %w", err)
		}
		result.Record = record
		return result, nil
	}

	candidate := lift.Record()
	written, err := s.recordRepo.Upsert(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	if written {
		log.WithFields(log.Fields{
			"member_id":   memberID,
			"exercise_id": lift.ExerciseID,
			"weight":      lift.Weight,
			"reps":        lift.Reps,
		}).Info("new personal record")
		result.Record = candidate
		result.NewRecord = true
		return result, nil
	}

	record, err := s.recordRepo.GetByMemberAndExercise(ctx, memberID, lift.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	result.Record = record
	return result, nil
}

// ListLifts returns the member's lift history, oldest first
func (s *RecordService) ListLifts(ctx context.Context, memberID string) ([]*domain.LiftLog, error) {
	lifts, err := s.liftRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifts: %w", err)
	}
	if lifts == nil {
		lifts = []*domain.LiftLog{}
	}
	return lifts, nil
}

// DeleteLift removes one of the member's lifts and recomputes their records.
// Records may go down as a result.
func (s *RecordService) DeleteLift(ctx context.Context, memberID, liftID string) error {
	lift, err := s.liftRepo.GetByID(ctx, liftID)
	if err != nil {
		return err
	}
	if lift.MemberID != memberID {
		return domain.ErrForbidden
	}

	if err := s.liftRepo.Delete(ctx, liftID); err != nil {
		return err
	}

	if _, err := s.RebuildRecords(ctx, memberID); err != nil {
		return fmt.Errorf("lift deleted but records not rebuilt: %w", err)
	}
	return nil
}

// RebuildRecords recomputes the member's records from their whole lift history
func (s *RecordService) RebuildRecords(ctx context.Context, memberID string) ([]*domain.PersonalRecord, error) {
	lifts, err := s.liftRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifts: %w", err)
	}

	records := domain.BestRecords(lifts)
	if err := s.recordRepo.ReplaceForMember(ctx, memberID, records); err != nil {
		return nil, fmt.Errorf("failed to store records: %w", err)
	}

	log.WithFields(log.Fields{
		"member_id": memberID,
		"lifts":     len(lifts),
		"records":   len(records),
	}).Info("personal records rebuilt")
	return records, nil
}

// ListRecords returns the member's current records
func (s *RecordService) ListRecords(ctx context.Context, memberID string) ([]*domain.PersonalRecord, error) {
	records, err := s.recordRepo.GetByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if records == nil {
		records = []*domain.PersonalRecord{}
	}
	return records, nil
}
