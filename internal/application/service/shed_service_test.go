package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granjatech/granja-api/internal/domain/entity"
)

func newShedFixture() (*ShedService, *fakeShedRepo) {
	shedRepo := newFakeShedRepo()
	return NewShedService(shedRepo), shedRepo
}

func TestRecordMortalityStampsShedName(t *testing.T) {
	svc, shedRepo := newShedFixture()
	shed := shedRepo.add(&entity.Shed{Name: "Galpao 3", BirdCount: 200})

	event, err := svc.RecordMortality(context.Background(), &RecordMortalityInput{
		ShedID: shed.ID,
		Date:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Count:  5,
	})
	require.NoError(t, err)

	// The name travels with the event so reports survive the shed's removal.
	assert.Equal(t, "Galpao 3", event.ShedName)
	assert.Equal(t, 195, shedRepo.sheds[shed.ID].BirdCount)
	assert.Equal(t, 5, shedRepo.sheds[shed.ID].CumulativeLosses)
}

func TestRecordMortalityRejectsUnknownShed(t *testing.T) {
	svc, _ := newShedFixture()

	_, err := svc.RecordMortality(context.Background(), &RecordMortalityInput{
		ShedID: uuid.New(),
		Date:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Count:  3,
	})
	assert.Error(t, err)
}

func TestRecordMortalityRejectsNonPositiveCount(t *testing.T) {
	svc, shedRepo := newShedFixture()
	shed := shedRepo.add(&entity.Shed{Name: "Galpao 1", BirdCount: 100})

	_, err := svc.RecordMortality(context.Background(), &RecordMortalityInput{
		ShedID: shed.ID,
		Date:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Count:  0,
	})
	assert.Error(t, err)
	assert.Empty(t, shedRepo.mortalities)
}
