package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakk1890/CureAi/internal/domain"
	doctorClient "github.com/sarthakk1890/CureAi/internal/integrations/doctorservice"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

const testDoctorID = "doc-1"

type mockDoctorClient struct {
	cfg         *domain.AvailabilityConfig
	updateErr   error
	updated     *domain.AvailabilityConfig
	updateCalls int
}

func (m *mockDoctorClient) GetAvailability(_ context.Context, _ string) (*domain.AvailabilityConfig, error) {
	return m.cfg.Clone(), nil
}

func (m *mockDoctorClient) UpdateAvailability(_ context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	m.updateCalls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = cfg.Clone()
	return cfg.Clone(), nil
}

type mockCache struct {
	configs map[string]*domain.AvailabilityConfig
}

func newMockCache() *mockCache {
	return &mockCache{configs: make(map[string]*domain.AvailabilityConfig)}
}

func (m *mockCache) GetConfig(doctorID string) (*domain.AvailabilityConfig, bool) {
	cfg, ok := m.configs[doctorID]
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

func (m *mockCache) StoreConfig(doctorID string, cfg *domain.AvailabilityConfig) {
	m.configs[doctorID] = cfg.Clone()
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func baseConfig() *domain.AvailabilityConfig {
	cfg := domain.DefaultAvailabilityConfig(testDoctorID)
	cfg.WorkingHours = []domain.WorkingHourRule{
		{Day: domain.Monday, Start: "09:00", End: "17:00"},
		{Day: domain.Tuesday, Start: "09:00", End: "17:00"},
	}
	return cfg
}

func loadedService(t *testing.T, cfg *domain.AvailabilityConfig) (*Service, *mockDoctorClient, *mockCache) {
	t.Helper()
	doctor := &mockDoctorClient{cfg: cfg}
	cache := newMockCache()
	svc := NewService(doctor, cache, noopLogger{})

	_, err := svc.Load(context.Background(), testDoctorID)
	require.NoError(t, err)
	return svc, doctor, cache
}

func TestToggleWeekday_DisableRemovesRules(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	require.NoError(t, svc.ToggleWeekday(testDoctorID, domain.Monday))

	draft, err := svc.Draft(testDoctorID)
	require.NoError(t, err)
	assert.Empty(t, draft.WorkingHoursFor(domain.Monday))
	assert.True(t, draft.IsWeekdayUnavailable(domain.Monday))
	assert.Len(t, draft.WorkingHoursFor(domain.Tuesday), 1)
}

func TestToggleWeekday_EnableInstallsDefaultRule(t *testing.T) {
	cfg := baseConfig()
	cfg.UnavailableDays = []domain.Weekday{domain.Saturday}
	svc, _, _ := loadedService(t, cfg)

	require.NoError(t, svc.ToggleWeekday(testDoctorID, domain.Saturday))

	draft, err := svc.Draft(testDoctorID)
	require.NoError(t, err)
	assert.False(t, draft.IsWeekdayUnavailable(domain.Saturday))

	windows := draft.WorkingHoursFor(domain.Saturday)
	require.Len(t, windows, 1)
	assert.Equal(t, types.TimeString("09:00"), windows[0].Start)
	assert.Equal(t, types.TimeString("17:00"), windows[0].End)
}

func TestToggleWeekday_RoundTripRestoresDefaultOnly(t *testing.T) {
	cfg := baseConfig()
	cfg.WorkingHours = append(cfg.WorkingHours, domain.WorkingHourRule{
		Day: domain.Monday, Start: "18:00", End: "20:00",
	})
	svc, _, _ := loadedService(t, cfg)

	require.NoError(t, svc.ToggleWeekday(testDoctorID, domain.Monday))
	require.NoError(t, svc.ToggleWeekday(testDoctorID, domain.Monday))

	// Выключение стирает оба окна понедельника; включение ставит одно дефолтное
	draft, err := svc.Draft(testDoctorID)
	require.NoError(t, err)
	windows := draft.WorkingHoursFor(domain.Monday)
	require.Len(t, windows, 1)
	assert.Equal(t, types.TimeString("09:00"), windows[0].Start)
}

func TestAddWorkingHours(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	err := svc.AddWorkingHours(testDoctorID, domain.WorkingHourRule{
		Day: domain.Wednesday, Start: "10:00", End: "14:00",
	})
	require.NoError(t, err)

	draft, err := svc.Draft(testDoctorID)
	require.NoError(t, err)
	assert.Len(t, draft.WorkingHoursFor(domain.Wednesday), 1)
}

func TestAddWorkingHours_InvalidWindow(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	err := svc.AddWorkingHours(testDoctorID, domain.WorkingHourRule{
		Day: domain.Wednesday, Start: "14:00", End: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.AddWorkingHours(testDoctorID, domain.WorkingHourRule{
		Day: "FUNDAY", Start: "10:00", End: "14:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveWorkingHours_UnknownIndex(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	assert.ErrorIs(t, svc.RemoveWorkingHours(testDoctorID, 5), ErrRuleNotFound)
	assert.ErrorIs(t, svc.RemoveWorkingHours(testDoctorID, -1), ErrRuleNotFound)
}

func TestAddRecurringBreak(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	err := svc.AddRecurringBreak(testDoctorID, domain.RecurringBreak{
		Type:  domain.BreakLunch,
		Days:  []domain.Weekday{domain.Monday, domain.Tuesday},
		Start: "13:00",
		End:   "14:00",
	})
	require.NoError(t, err)

	err = svc.AddRecurringBreak(testDoctorID, domain.RecurringBreak{
		Type: domain.BreakTea, Days: nil, Start: "16:00", End: "16:15",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddBlockedSlot_MidnightEndAccepted(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	// Дефектный, но известный ввод календаря: конец 00:00 того же дня
	err := svc.AddBlockedSlot(testDoctorID, domain.BlockedInterval{
		Start: domain.Timestamp{Date: "2026-09-07", Time: "10:00"},
		End:   domain.Timestamp{Date: "2026-09-07", Time: "00:00"},
	})
	require.NoError(t, err)

	err = svc.AddBlockedSlot(testDoctorID, domain.BlockedInterval{
		Start: domain.Timestamp{Date: "2026-09-07", Time: "10:00"},
		End:   domain.Timestamp{Date: "2026-09-07", Time: "09:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetSlotTiming_Bounds(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	require.NoError(t, svc.SetSlotTiming(testDoctorID, 20, 10, 15))

	draft, err := svc.Draft(testDoctorID)
	require.NoError(t, err)
	assert.Equal(t, 20, draft.SlotDurationMinutes)
	assert.Equal(t, 10, draft.BufferTimeMinutes)
	assert.Equal(t, 15, draft.MeetingLengthMinutes)

	assert.ErrorIs(t, svc.SetSlotTiming(testDoctorID, 2, 0, 30), ErrInvalidInput)
	assert.ErrorIs(t, svc.SetSlotTiming(testDoctorID, 30, 500, 30), ErrInvalidInput)
	assert.ErrorIs(t, svc.SetSlotTiming(testDoctorID, 30, 0, 1000), ErrInvalidInput)
}

func TestDraftChangesInvisibleUntilSave(t *testing.T) {
	svc, doctor, cache := loadedService(t, baseConfig())

	require.NoError(t, svc.ToggleWeekday(testDoctorID, domain.Monday))

	// Кэш (то, что видит генератор) все еще держит загруженную версию
	cached, ok := cache.GetConfig(testDoctorID)
	require.True(t, ok)
	assert.Len(t, cached.WorkingHoursFor(domain.Monday), 1)
	assert.Zero(t, doctor.updateCalls)

	saved, err := svc.Save(context.Background(), testDoctorID)
	require.NoError(t, err)
	assert.Empty(t, saved.WorkingHoursFor(domain.Monday))

	cached, ok = cache.GetConfig(testDoctorID)
	require.True(t, ok)
	assert.Empty(t, cached.WorkingHoursFor(domain.Monday))
	assert.Equal(t, 1, doctor.updateCalls)
}

func TestSave_SendsFullConfig(t *testing.T) {
	svc, doctor, _ := loadedService(t, baseConfig())

	require.NoError(t, svc.AddUnavailableDate(testDoctorID, "2026-12-25"))
	_, err := svc.Save(context.Background(), testDoctorID)
	require.NoError(t, err)

	// Уходит полная конфигурация, не дельта
	require.NotNil(t, doctor.updated)
	assert.Len(t, doctor.updated.WorkingHours, 2)
	assert.Equal(t, []types.DateStamp{"2026-12-25"}, doctor.updated.UnavailableDates)
}

func TestSave_RejectionKeepsDraft(t *testing.T) {
	svc, doctor, _ := loadedService(t, baseConfig())
	doctor.updateErr = doctorClient.ErrUpdateRejected

	require.NoError(t, svc.ToggleWeekday(testDoctorID, domain.Monday))

	_, err := svc.Save(context.Background(), testDoctorID)
	assert.ErrorIs(t, err, ErrUpdateRejected)

	// Правки не потеряны - можно исправить и отправить снова
	draft, err := svc.Draft(testDoctorID)
	require.NoError(t, err)
	assert.Empty(t, draft.WorkingHoursFor(domain.Monday))
}

func TestOperationsRequireLoadedDraft(t *testing.T) {
	svc := NewService(&mockDoctorClient{cfg: baseConfig()}, newMockCache(), noopLogger{})

	assert.ErrorIs(t, svc.ToggleWeekday(testDoctorID, domain.Monday), ErrNoDraft)
	_, err := svc.Draft(testDoctorID)
	assert.ErrorIs(t, err, ErrNoDraft)
	_, err = svc.Save(context.Background(), testDoctorID)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestLoad_ReplacesUnsavedDraft(t *testing.T) {
	svc, _, _ := loadedService(t, baseConfig())

	require.NoError(t, svc.ToggleWeekday(testDoctorID, domain.Monday))
	_, err := svc.Load(context.Background(), testDoctorID)
	require.NoError(t, err)

	draft, err := svc.Draft(testDoctorID)
	require.NoError(t, err)
	assert.Len(t, draft.WorkingHoursFor(domain.Monday), 1)
}
