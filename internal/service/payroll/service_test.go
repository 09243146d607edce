package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/hrweb-ph/payroll-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	payrollTestDB   *database.DB
	payrollTestOnce sync.Once
)

func payrollTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	payrollTestOnce.Do(func() {
		var err error
		payrollTestDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
}

func newTestPayrollService() payroll.PayrollService {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewPayrollService(
		payrollTestDB,
		postgresql.NewPayrollRepository(payrollTestDB),
		postgresql.NewSummaryRepository(payrollTestDB),
		postgresql.NewEmployeeRepository(payrollTestDB),
		postgresql.NewBenefitRepository(payrollTestDB),
		postgresql.NewDeductionRepository(payrollTestDB),
		logger,
	)
}

func createPayrollTestEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()
	var id string
	name := fmt.Sprintf("Payroll Test %d", time.Now().UnixNano())
	err := payrollTestDB.QueryRow(ctx, `
		INSERT INTO employees (name, pay_type, basic_rate, pay_allowance, is_taxable)
		VALUES ($1, 'daily', 500, 0, FALSE)
		RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// createPostedSummary seeds a posted period summary with ten worked days.
func createPostedSummary(t *testing.T, ctx context.Context, employeeID string, status summary.SummaryStatus) string {
	t.Helper()
	var id string
	err := payrollTestDB.QueryRow(ctx, `
		INSERT INTO period_summaries (id, employee_id, year, month, period_type, days_worked, hours_worked, status)
		VALUES (gen_random_uuid(), $1, 2025, 3, 'first_half', 10, 80, $2)
		RETURNING id
	`, employeeID, string(status)).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPayrollService_GenerateFromPostedSummary(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()

	employeeID := createPayrollTestEmployee(t, ctx)
	summaryID := createPostedSummary(t, ctx, employeeID, summary.SummaryStatusPosted)

	svc := newTestPayrollService()

	result, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{SummaryID: summaryID}, "test-actor")
	require.NoError(t, err)

	assert.Equal(t, string(payroll.PayrollStatusDraft), result.Status)
	assert.Equal(t, string(payroll.ApprovalStatusPending), result.ApprovalStatus)
	assert.Equal(t, string(payroll.RoleHR), result.CurrentApprover)
	assert.True(t, result.BasicPay.IntPart() == 5000, "got %s", result.BasicPay)
	assert.True(t, result.NetPay.IntPart() == 5000, "got %s", result.NetPay)

	// One payroll per cutoff
	_, err = svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{SummaryID: summaryID}, "test-actor")
	assert.ErrorIs(t, err, payroll.ErrFinalPayrollAlreadyExists)
}

func TestPayrollService_GenerateRequiresPostedSummary(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()

	employeeID := createPayrollTestEmployee(t, ctx)
	summaryID := createPostedSummary(t, ctx, employeeID, summary.SummaryStatusDraft)

	svc := newTestPayrollService()

	_, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{SummaryID: summaryID}, "test-actor")
	assert.ErrorIs(t, err, summary.ErrSummaryNotPosted)
}

func TestPayrollService_ApprovalAndLifecycle(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()

	employeeID := createPayrollTestEmployee(t, ctx)
	summaryID := createPostedSummary(t, ctx, employeeID, summary.SummaryStatusPosted)

	svc := newTestPayrollService()

	generated, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{SummaryID: summaryID}, "test-actor")
	require.NoError(t, err)

	// Finalizing before approval is refused
	_, err = svc.FinalizePayroll(ctx, generated.ID, "finance-actor")
	assert.ErrorIs(t, err, payroll.ErrNotApproved)

	// Paying before finalizing is refused
	_, err = svc.MarkPaid(ctx, generated.ID, "finance-actor")
	assert.ErrorIs(t, err, payroll.ErrNotFinalized)

	// Approve
	remarks := "looks right"
	approved, err := svc.ApprovePayroll(ctx, payroll.ApprovalRequest{ID: generated.ID, Remarks: &remarks}, "hr-actor")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.ApprovalStatusApproved), approved.ApprovalStatus)
	assert.Equal(t, string(payroll.RoleFinance), approved.CurrentApprover)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "hr-actor", *approved.ApprovedBy)

	// The decision is final
	_, err = svc.RejectPayroll(ctx, payroll.ApprovalRequest{ID: generated.ID}, "hr-actor")
	assert.ErrorIs(t, err, payroll.ErrAlreadyProcessed)

	// Approved payrolls are no longer editable
	absence := dec("1")
	_, err = svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{ID: generated.ID, AbsenceDays: &absence})
	assert.ErrorIs(t, err, payroll.ErrPayrollNotEditable)

	// Finalize, then pay
	finalized, err := svc.FinalizePayroll(ctx, generated.ID, "finance-actor")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusFinalized), finalized.Status)

	paid, err := svc.MarkPaid(ctx, generated.ID, "finance-actor")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPaid), paid.Status)
	assert.Equal(t, string(payroll.RoleNone), paid.CurrentApprover)

	// Paid is terminal
	_, err = svc.MarkPaid(ctx, generated.ID, "finance-actor")
	assert.ErrorIs(t, err, payroll.ErrNotFinalized)
}

func TestPayrollService_UpdateAndRecalculate(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()

	employeeID := createPayrollTestEmployee(t, ctx)
	summaryID := createPostedSummary(t, ctx, employeeID, summary.SummaryStatusPosted)

	svc := newTestPayrollService()

	generated, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{SummaryID: summaryID}, "test-actor")
	require.NoError(t, err)

	// One absent day knocks a day's rate off net pay
	absence := dec("1")
	updated, err := svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{ID: generated.ID, AbsenceDays: &absence})
	require.NoError(t, err)
	assert.True(t, updated.AbsenceDeduction.IntPart() == 500, "got %s", updated.AbsenceDeduction)
	assert.True(t, updated.NetPay.IntPart() == 4500, "got %s", updated.NetPay)

	// Recalculating unchanged inputs is a no-op
	recalced, err := svc.RecalculatePayroll(ctx, generated.ID)
	require.NoError(t, err)
	assert.True(t, recalced.NetPay.Equal(updated.NetPay))
}

func TestPayrollService_RejectionStopsTheFlow(t *testing.T) {
	payrollTestInit(t)
	ctx := context.Background()

	employeeID := createPayrollTestEmployee(t, ctx)
	summaryID := createPostedSummary(t, ctx, employeeID, summary.SummaryStatusPosted)

	svc := newTestPayrollService()

	generated, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{SummaryID: summaryID}, "test-actor")
	require.NoError(t, err)

	rejected, err := svc.RejectPayroll(ctx, payroll.ApprovalRequest{ID: generated.ID}, "hr-actor")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.ApprovalStatusRejected), rejected.ApprovalStatus)
	assert.Equal(t, string(payroll.RoleNone), rejected.CurrentApprover)

	_, err = svc.FinalizePayroll(ctx, generated.ID, "finance-actor")
	assert.ErrorIs(t, err, payroll.ErrNotApproved)
}
