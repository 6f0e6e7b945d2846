package models

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusPending     SubscriptionStatus = "pending"
	SubscriptionStatusActive      SubscriptionStatus = "active"
	SubscriptionStatusExpired     SubscriptionStatus = "expired"
	SubscriptionStatusDeactivated SubscriptionStatus = "deactivated"
)

// SubscriptionPlan is a billing plan a partner subscribes to. Plans are
// seeded at boot; TotalAmount is the discounted up-front price for the
// whole duration.
type SubscriptionPlan struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"unique;not null" json:"name"`
	DurationMonths int    `gorm:"not null" json:"duration_months"`
	MonthlyAmount  int64  `gorm:"not null" json:"monthly_amount"` // GNF
	TotalAmount    int64  `gorm:"not null" json:"total_amount"`   // GNF
}

// Savings is what the partner keeps versus paying month by month.
func (p SubscriptionPlan) Savings() int64 {
	return p.MonthlyAmount*int64(p.DurationMonths) - p.TotalAmount
}

// Subscription rows are never deleted; history is kept for audit. At most one
// subscription per partner may be active at a time.
type Subscription struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	PartnerID          string             `gorm:"index;not null" json:"partner_id"`
	PlanID             uint               `gorm:"not null" json:"plan_id"`
	Plan               SubscriptionPlan   `gorm:"foreignKey:PlanID" json:"plan"`
	Status             SubscriptionStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	StartDate          *time.Time         `json:"start_date"`
	EndDate            *time.Time         `json:"end_date"`
	MonthlyAmount      int64              `json:"monthly_amount"` // GNF
	TotalPaid          int64              `json:"total_paid"`     // GNF
	SavingsAmount      int64              `json:"savings_amount"` // GNF
	DeactivationReason string             `json:"deactivation_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// Activate moves a pending subscription to active, anchoring its validity
// window at now for the plan's duration.
func (s *Subscription) Activate(plan SubscriptionPlan, now time.Time) error {
	if s.Status != SubscriptionStatusPending {
		return ErrSubscriptionNotPending
	}
	end := now.AddDate(0, plan.DurationMonths, 0)
	s.Status = SubscriptionStatusActive
	s.StartDate = &now
	s.EndDate = &end
	s.MonthlyAmount = plan.MonthlyAmount
	s.TotalPaid = plan.TotalAmount
	s.SavingsAmount = plan.Savings()
	return nil
}

// Deactivate is irreversible and records the partner-supplied reason.
func (s *Subscription) Deactivate(reason string) error {
	if s.Status != SubscriptionStatusActive {
		return ErrSubscriptionNotActive
	}
	s.Status = SubscriptionStatusDeactivated
	s.DeactivationReason = reason
	return nil
}

// ExpiredNow reports whether an active subscription's window has lapsed.
// Expiry is reconciled on read rather than by a background job.
func (s *Subscription) ExpiredNow(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.EndDate != nil && s.EndDate.Before(now)
}
