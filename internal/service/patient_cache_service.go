package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"patient-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefix for cached patient records
	RedisPatientKeyPrefix = "patient:"

	// Cached records expire on their own even if an invalidation is missed
	patientCacheTTL = 5 * time.Minute
)

// PatientCacheService is a read-through cache in front of the patient store.
// It only ever holds copies that the persistence layer has served; every
// write path invalidates the corresponding key, and misses always fall
// through to the database.
type PatientCacheService interface {
	// Get returns the cached patient or (nil, nil) on a miss.
	Get(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	Set(ctx context.Context, patient *entity.Patient) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type patientCacheService struct {
	client *redis.Client
}

func NewPatientCacheService(client *redis.Client) PatientCacheService {
	return &patientCacheService{client: client}
}

func (s *patientCacheService) Get(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	data, err := s.client.Get(ctx, RedisPatientKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var patient entity.Patient
	if err := json.Unmarshal(data, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *patientCacheService) Set(ctx context.Context, patient *entity.Patient) error {
	data, err := json.Marshal(patient)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, RedisPatientKeyPrefix+patient.ID.String(), data, patientCacheTTL).Err()
}

func (s *patientCacheService) Invalidate(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, RedisPatientKeyPrefix+id.String()).Err()
}
