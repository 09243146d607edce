package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPayroll_Editable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   PayrollStatus
		approval ApprovalStatus
		want     bool
	}{
		{"pending draft", PayrollStatusDraft, ApprovalStatusPending, true},
		{"approved draft", PayrollStatusDraft, ApprovalStatusApproved, false},
		{"rejected draft", PayrollStatusDraft, ApprovalStatusRejected, false},
		{"finalized", PayrollStatusFinalized, ApprovalStatusApproved, false},
		{"paid", PayrollStatusPaid, ApprovalStatusApproved, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := FinalPayroll{Status: tt.status, ApprovalStatus: tt.approval}

			assert.Equal(t, tt.want, p.Editable())
		})
	}
}

func TestCurrentApprover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   PayrollStatus
		approval ApprovalStatus
		want     ApproverRole
	}{
		{"pending draft goes to hr", PayrollStatusDraft, ApprovalStatusPending, RoleHR},
		{"approved draft goes to finance", PayrollStatusDraft, ApprovalStatusApproved, RoleFinance},
		{"finalized goes to finance", PayrollStatusFinalized, ApprovalStatusApproved, RoleFinance},
		{"rejected has no next actor", PayrollStatusDraft, ApprovalStatusRejected, RoleNone},
		{"paid has no next actor", PayrollStatusPaid, ApprovalStatusApproved, RoleNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CurrentApprover(tt.status, tt.approval))
		})
	}
}
