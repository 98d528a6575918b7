package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campaign-hub/internal/core/domain"
)

type seedSegment struct {
	id       string
	name     string
	desc     string
	criteria domain.SegmentCriteria
	count    int64
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// Seed inserts demo users, segments, reward accounts and draft campaigns.
// It is idempotent: existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	users := []struct{ username, name string }{
		{"admin", "Administrator"},
		{"marketing", "Marketing Manager"},
		{"approver", "Campaign Approver"},
	}
	for _, u := range users {
		_, err := db.Exec(ctx, `INSERT INTO users (username, display_name) VALUES ($1, $2)
ON CONFLICT (username) DO NOTHING`, u.username, u.name)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}
	var ownerID int64
	if err := db.QueryRow(ctx, `SELECT id FROM users WHERE username = 'marketing'`).Scan(&ownerID); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}

	segments := []seedSegment{
		{
			id:   "sys_seg_high_value_active",
			name: "High Value Active Users",
			desc: "Active customers with high lifetime value",
			criteria: domain.SegmentCriteria{
				Behavioral: &domain.BehavioralCriteria{LastActivityDays: intPtr(30)},
				Value:      &domain.ValueCriteria{Tier: "high", LifetimeValue: &domain.Range{Min: floatPtr(1000)}},
				RuleLogic:  domain.RuleAnd,
			},
			count: 125000,
		},
		{
			id:   "sys_seg_dormant_30",
			name: "Dormant 30 Days",
			desc: "Customers inactive for 30+ days",
			criteria: domain.SegmentCriteria{
				Activity:  &domain.ActivityCriteria{Status: []string{"active", "inactive"}, LastActiveDaysMin: intPtr(30)},
				RuleLogic: domain.RuleAnd,
			},
			count: 89500,
		},
		{
			id:   "sys_seg_new_users",
			name: "New Users",
			desc: "Users registered in the last month",
			criteria: domain.SegmentCriteria{
				Demographic: &domain.DemographicCriteria{KYCLevel: "basic"},
				RuleLogic:   domain.RuleAnd,
			},
			count: 45200,
		},
	}
	for _, s := range segments {
		criteria, err := json.Marshal(s.criteria)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO customer_segments
    (id, name, description, segment_type, criteria, auto_refresh, refresh_interval, customer_count, is_system)
VALUES ($1,$2,$3,$4,$5,true,'daily',$6,true) ON CONFLICT DO NOTHING`,
			s.id, s.name, s.desc, s.criteria.DerivedType(), criteria, s.count)
		if err != nil {
			return fmt.Errorf("seed segment %s: %w", s.id, err)
		}
	}

	accounts := []struct {
		id, name string
		balance  string
	}{
		{"ACC_001", "Marketing Budget", "50000.00"},
		{"ACC_002", "Holiday Campaign Fund", "25000.00"},
		{"ACC_003", "Win-back Reserve", "10000.00"},
	}
	for _, a := range accounts {
		_, err := db.Exec(ctx, `INSERT INTO reward_accounts (account_id, account_name, balance, currency, status)
VALUES ($1,$2,$3,'ETB','active') ON CONFLICT (account_id) DO NOTHING`,
			a.id, a.name, decimal.RequireFromString(a.balance))
		if err != nil {
			return fmt.Errorf("seed account %s: %w", a.id, err)
		}
	}

	start := time.Now().UTC().AddDate(0, 0, 7).Truncate(time.Hour)
	end := start.AddDate(0, 0, 14)
	campaigns := []struct {
		name, kind, segment string
	}{
		{"Meskel Season Rewards", string(domain.CampaignIncentive), "sys_seg_high_value_active"},
		{"Timket Win-back", string(domain.CampaignWinBack), "sys_seg_dormant_30"},
	}
	for _, c := range campaigns {
		id := uuid.New()
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, campaign_id, name, campaign_type, objective, description, channels, owner_id,
     schedule_type, start_date, end_date, segment_id, selected_segment_ids)
SELECT $1,$2,$3,$4,$5,$6,'["sms","app"]'::jsonb,$7,'scheduled',$8,$9,$10,jsonb_build_array($10::text)
WHERE NOT EXISTS (SELECT 1 FROM campaigns WHERE name = $3)`,
			id, domain.GenerateCampaignCode(id), c.name, c.kind,
			"Re-engage customers", c.name+" seeded for demos", ownerID, start, end, c.segment)
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.name, err)
		}
	}
	return nil
}
