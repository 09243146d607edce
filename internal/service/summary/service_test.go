package summary

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/hrweb-ph/payroll-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	summaryTestDB   *database.DB
	summaryTestOnce sync.Once
)

func summaryTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	summaryTestOnce.Do(func() {
		var err error
		summaryTestDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
}

func newTestSummaryService() summary.SummaryService {
	return NewSummaryService(
		summaryTestDB,
		postgresql.NewSummaryRepository(summaryTestDB),
		postgresql.NewAttendanceRepository(summaryTestDB),
		postgresql.NewEmployeeRepository(summaryTestDB),
		postgresql.NewBenefitRepository(summaryTestDB),
		postgresql.NewDeductionRepository(summaryTestDB),
	)
}

func createSummaryTestEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()
	var id string
	name := fmt.Sprintf("Summary Test %d", time.Now().UnixNano())
	err := summaryTestDB.QueryRow(ctx, `
		INSERT INTO employees (name, pay_type, basic_rate, pay_allowance, is_taxable)
		VALUES ($1, 'daily', 500, 0, FALSE)
		RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func createSummaryTestAttendance(t *testing.T, ctx context.Context, employeeID string, date time.Time) {
	t.Helper()
	in := time.Date(date.Year(), date.Month(), date.Day(), 8, 0, 0, 0, time.UTC)
	out := time.Date(date.Year(), date.Month(), date.Day(), 17, 0, 0, 0, time.UTC)
	_, err := summaryTestDB.Exec(ctx, `
		INSERT INTO attendances (id, employee_id, date, time_in, time_out, hours_worked)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 8)
	`, employeeID, date, in, out)
	require.NoError(t, err)
}

func TestSummaryService_GeneratePostLock(t *testing.T) {
	summaryTestInit(t)
	ctx := context.Background()

	employeeID := createSummaryTestEmployee(t, ctx)
	createSummaryTestAttendance(t, ctx, employeeID, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	createSummaryTestAttendance(t, ctx, employeeID, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))

	svc := newTestSummaryService()

	// Generate
	result, err := svc.GenerateSummary(ctx, summary.GenerateSummaryRequest{
		EmployeeID: employeeID,
		Year:       2025,
		Month:      3,
		PeriodType: string(summary.PeriodFirstHalf),
	})
	require.NoError(t, err)
	assert.Equal(t, string(summary.SummaryStatusDraft), result.Status)
	assert.True(t, result.DaysWorked.IntPart() == 2, "got %s", result.DaysWorked)
	assert.True(t, result.HoursWorked.IntPart() == 16, "got %s", result.HoursWorked)

	// Regenerating a draft replaces it in place
	again, err := svc.GenerateSummary(ctx, summary.GenerateSummaryRequest{
		EmployeeID: employeeID,
		Year:       2025,
		Month:      3,
		PeriodType: string(summary.PeriodFirstHalf),
	})
	require.NoError(t, err)
	assert.Equal(t, result.ID, again.ID)

	// Post
	posted, err := svc.PostSummary(ctx, result.ID, "posting-actor")
	require.NoError(t, err)
	assert.Equal(t, string(summary.SummaryStatusPosted), posted.Status)
	require.NotNil(t, posted.PostedBy)
	assert.Equal(t, "posting-actor", *posted.PostedBy)

	// Posted summaries are never regenerated
	_, err = svc.GenerateSummary(ctx, summary.GenerateSummaryRequest{
		EmployeeID: employeeID,
		Year:       2025,
		Month:      3,
		PeriodType: string(summary.PeriodFirstHalf),
	})
	assert.ErrorIs(t, err, summary.ErrSummaryNotDraft)

	// Contributing attendance got consumed
	var notPosted int
	err = summaryTestDB.QueryRow(ctx, `
		SELECT COUNT(*) FROM attendances
		WHERE employee_id = $1 AND posting_status = 'not_posted'
	`, employeeID).Scan(&notPosted)
	require.NoError(t, err)
	assert.Equal(t, 0, notPosted)

	// Lock keeps the posting stamp and records its own
	locked, err := svc.LockSummary(ctx, result.ID, "locking-actor")
	require.NoError(t, err)
	assert.Equal(t, string(summary.SummaryStatusLocked), locked.Status)
	require.NotNil(t, locked.PostedBy)
	assert.Equal(t, "posting-actor", *locked.PostedBy)
	require.NotNil(t, locked.PostedAt)
	assert.Equal(t, *posted.PostedAt, *locked.PostedAt)
	require.NotNil(t, locked.LockedBy)
	assert.Equal(t, "locking-actor", *locked.LockedBy)
	require.NotNil(t, locked.LockedAt)

	// Lock is terminal
	_, err = svc.LockSummary(ctx, result.ID, "locking-actor")
	assert.ErrorIs(t, err, summary.ErrSummaryNotPosted)
	_, err = svc.PostSummary(ctx, result.ID, "posting-actor")
	assert.ErrorIs(t, err, summary.ErrSummaryLocked)
}

func TestSummaryService_PostRefoldsLateRows(t *testing.T) {
	summaryTestInit(t)
	ctx := context.Background()

	employeeID := createSummaryTestEmployee(t, ctx)
	createSummaryTestAttendance(t, ctx, employeeID, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC))

	svc := newTestSummaryService()

	result, err := svc.GenerateSummary(ctx, summary.GenerateSummaryRequest{
		EmployeeID: employeeID,
		Year:       2025,
		Month:      5,
		PeriodType: string(summary.PeriodFirstHalf),
	})
	require.NoError(t, err)
	assert.True(t, result.DaysWorked.IntPart() == 1, "got %s", result.DaysWorked)

	// A row recorded between generation and posting must end up in the
	// snapshot that consumes it, not get flipped to posted unconsumed.
	createSummaryTestAttendance(t, ctx, employeeID, time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC))

	posted, err := svc.PostSummary(ctx, result.ID, "posting-actor")
	require.NoError(t, err)
	assert.True(t, posted.DaysWorked.IntPart() == 2, "got %s", posted.DaysWorked)
	assert.True(t, posted.HoursWorked.IntPart() == 16, "got %s", posted.HoursWorked)

	var notPosted int
	err = summaryTestDB.QueryRow(ctx, `
		SELECT COUNT(*) FROM attendances
		WHERE employee_id = $1 AND posting_status = 'not_posted'
	`, employeeID).Scan(&notPosted)
	require.NoError(t, err)
	assert.Equal(t, 0, notPosted)
}

func TestSummaryService_GenerateEmptyPeriod(t *testing.T) {
	summaryTestInit(t)
	ctx := context.Background()

	employeeID := createSummaryTestEmployee(t, ctx)
	svc := newTestSummaryService()

	result, err := svc.GenerateSummary(ctx, summary.GenerateSummaryRequest{
		EmployeeID: employeeID,
		Year:       2025,
		Month:      4,
		PeriodType: string(summary.PeriodSecondHalf),
	})
	require.NoError(t, err)

	assert.True(t, result.DaysWorked.IsZero())
	assert.True(t, result.HoursWorked.IsZero())
	assert.Equal(t, string(summary.SummaryStatusDraft), result.Status)
}

func TestSummaryService_GenerateUnknownEmployee(t *testing.T) {
	summaryTestInit(t)
	ctx := context.Background()

	svc := newTestSummaryService()

	_, err := svc.GenerateSummary(ctx, summary.GenerateSummaryRequest{
		EmployeeID: "00000000-0000-0000-0000-000000000000",
		Year:       2025,
		Month:      3,
		PeriodType: string(summary.PeriodFirstHalf),
	})
	assert.Error(t, err)
}
