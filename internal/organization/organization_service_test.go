package organization_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-manpower/internal/organization"
	organizationerrors "go-manpower/internal/organization/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	createSectionFn    func(ctx context.Context, section *organization.Section) error
	createSubSectionFn func(ctx context.Context, sub *organization.SubSection) error
	createShiftFn      func(ctx context.Context, shift *organization.Shift) error
	findSectionsFn     func(ctx context.Context, companyID string) ([]organization.Section, error)
	findSectionByIDFn  func(ctx context.Context, companyID, id string) (*organization.Section, error)
	findShiftsFn       func(ctx context.Context, companyID string) ([]organization.Shift, error)
}

func (f *fakeRepository) WithTx(tx *sql.Tx) organization.Repository { return f }

func (f *fakeRepository) CreateSection(ctx context.Context, section *organization.Section) error {
	if f.createSectionFn != nil {
		return f.createSectionFn(ctx, section)
	}
	return nil
}

func (f *fakeRepository) CreateSubSection(ctx context.Context, sub *organization.SubSection) error {
	if f.createSubSectionFn != nil {
		return f.createSubSectionFn(ctx, sub)
	}
	return nil
}

func (f *fakeRepository) CreateShift(ctx context.Context, shift *organization.Shift) error {
	if f.createShiftFn != nil {
		return f.createShiftFn(ctx, shift)
	}
	return nil
}

func (f *fakeRepository) FindSections(ctx context.Context, companyID string) ([]organization.Section, error) {
	if f.findSectionsFn != nil {
		return f.findSectionsFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeRepository) FindSectionByID(ctx context.Context, companyID, id string) (*organization.Section, error) {
	if f.findSectionByIDFn != nil {
		return f.findSectionByIDFn(ctx, companyID, id)
	}
	return nil, organizationerrors.ErrSectionNotFound
}

func (f *fakeRepository) FindShifts(ctx context.Context, companyID string) ([]organization.Shift, error) {
	if f.findShiftsFn != nil {
		return f.findShiftsFn(ctx, companyID)
	}
	return nil, nil
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	repo      *fakeRepository
	service   organization.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeRepository{}
	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      repo,
		service:   organization.NewService(db, repo, rdb),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestOrganizationService_CreateSection(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("creates section with sub-sections and invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(organization.GetOptionsKey(companyID)).SetVal(1)

		var created []string
		deps.repo.createSubSectionFn = func(ctx context.Context, sub *organization.SubSection) error {
			assert.Equal(t, companyID, sub.CompanyID.String())
			created = append(created, sub.Name)
			return nil
		}

		resp, err := deps.service.CreateSection(ctx, companyID, organization.CreateSectionRequest{
			Name:        "Warehouse",
			SubSections: []string{"Loader", "Packing"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Warehouse", resp.Name)
		assert.Len(t, resp.SubSections, 2)
		assert.Equal(t, "Warehouse", resp.SubSections[0].SectionName)
		assert.Equal(t, []string{"Loader", "Packing"}, created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate name rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)
		deps.repo.createSectionFn = func(ctx context.Context, section *organization.Section) error {
			return organizationerrors.ErrDuplicateName
		}

		_, err := deps.service.CreateSection(ctx, companyID, organization.CreateSectionRequest{Name: "Warehouse"})

		assert.ErrorIs(t, err, organizationerrors.ErrDuplicateName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid company", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateSection(ctx, "nope", organization.CreateSectionRequest{Name: "Warehouse"})

		assert.ErrorIs(t, err, organizationerrors.ErrInvalidCompanyID)
	})
}

func TestOrganizationService_CreateSubSection(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("unknown section", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.CreateSubSection(ctx, companyID, uuid.NewString(), organization.CreateSubSectionRequest{Name: "Loader"})

		assert.ErrorIs(t, err, organizationerrors.ErrSectionNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(organization.GetOptionsKey(companyID)).SetVal(1)
		sectionID := uuid.New()
		deps.repo.findSectionByIDFn = func(ctx context.Context, cid, id string) (*organization.Section, error) {
			return &organization.Section{ID: sectionID, Name: "Warehouse"}, nil
		}

		resp, err := deps.service.CreateSubSection(ctx, companyID, sectionID.String(), organization.CreateSubSectionRequest{Name: "Loader"})

		require.NoError(t, err)
		assert.Equal(t, sectionID.String(), resp.SectionID)
		assert.Equal(t, "Warehouse", resp.SectionName)
	})
}

func TestOrganizationService_CreateShift(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "bad start", start: "7am", end: "15:00", wantErr: organizationerrors.ErrInvalidShiftTime},
		{name: "bad end", start: "07:00", end: "25:00", wantErr: organizationerrors.ErrInvalidShiftTime},
		{name: "zero length", start: "07:00", end: "07:00", wantErr: organizationerrors.ErrZeroLengthShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			defer deps.db.Close()

			_, err := deps.service.CreateShift(ctx, companyID, organization.CreateShiftRequest{Name: "Pagi", StartTime: tt.start, EndTime: tt.end})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("overnight shift", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(organization.GetOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.CreateShift(ctx, companyID, organization.CreateShiftRequest{Name: "Malam", StartTime: "22:00", EndTime: "06:00"})

		require.NoError(t, err)
		assert.True(t, resp.Overnight)
	})
}

func TestOrganizationService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := organization.GetOptionsKey(companyID)
	shiftID := uuid.New()

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		cached := organization.OptionsResponse{Shifts: []organization.ShiftResponse{{ID: shiftID.String(), Name: "Pagi"}}}
		raw, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(cacheKey).SetVal(string(raw))
		deps.repo.findShiftsFn = func(ctx context.Context, companyID string) ([]organization.Shift, error) {
			t.Fatal("repository must not be called on cache hit")
			return nil, nil
		}

		resp, err := deps.service.GetOptions(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, "Pagi", resp.Shifts[0].Name)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.repo.findShiftsFn = func(ctx context.Context, companyID string) ([]organization.Shift, error) {
			return []organization.Shift{{ID: shiftID, Name: "Pagi", StartTime: "07:00", EndTime: "15:00"}}, nil
		}
		expected := organization.OptionsResponse{
			Sections: []organization.SectionResponse{},
			Shifts: []organization.ShiftResponse{
				{ID: shiftID.String(), Name: "Pagi", StartTime: "07:00", EndTime: "15:00"},
			},
		}
		raw, _ := json.Marshal(expected)
		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.redisMock.ExpectSet(cacheKey, string(raw), time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.findSectionsFn = func(ctx context.Context, companyID string) ([]organization.Section, error) {
			return nil, errors.New("db down")
		}

		_, err := deps.service.GetOptions(ctx, companyID)

		assert.Error(t, err)
	})
}

func TestShiftOverlaps(t *testing.T) {
	pagi := organization.Shift{ID: uuid.New(), StartTime: "07:00", EndTime: "15:00"}
	siang := organization.Shift{ID: uuid.New(), StartTime: "15:00", EndTime: "23:00"}
	middle := organization.Shift{ID: uuid.New(), StartTime: "12:00", EndTime: "20:00"}
	malam := organization.Shift{ID: uuid.New(), StartTime: "22:00", EndTime: "06:00"}
	broken := organization.Shift{ID: uuid.New(), StartTime: "x", EndTime: "06:00"}

	assert.True(t, pagi.Overlaps(pagi))
	assert.False(t, pagi.Overlaps(siang), "touching boundaries do not overlap")
	assert.True(t, pagi.Overlaps(middle))
	assert.True(t, middle.Overlaps(siang))
	assert.True(t, siang.Overlaps(malam))
	assert.False(t, pagi.Overlaps(malam))
	assert.True(t, broken.Overlaps(pagi))

	start, end, err := malam.Window()
	require.NoError(t, err)
	assert.Equal(t, 22*60, start)
	assert.Equal(t, 30*60, end)
}
