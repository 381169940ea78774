package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionPlanValidate(t *testing.T) {
	plan := SubscriptionPlan{
		Name:          "Starter",
		Amount:        499,
		ContactsCount: 5,
		Type:          ContactTypeDesigner,
		IsActive:      true,
	}
	require.NoError(t, plan.Validate())
}

func TestSubscriptionPlanValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubscriptionPlan)
	}{
		{"empty name", func(p *SubscriptionPlan) { p.Name = "" }},
		{"zero amount", func(p *SubscriptionPlan) { p.Amount = 0 }},
		{"negative amount", func(p *SubscriptionPlan) { p.Amount = -100 }},
		{"zero contacts", func(p *SubscriptionPlan) { p.ContactsCount = 0 }},
		{"unknown type", func(p *SubscriptionPlan) { p.Type = "architect" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := SubscriptionPlan{
				Name:          "Starter",
				Amount:        499,
				ContactsCount: 5,
				Type:          ContactTypeCraftsman,
			}
			tc.mutate(&plan)
			assert.Error(t, plan.Validate())
		})
	}
}

func TestNormalizeContactType(t *testing.T) {
	got, err := NormalizeContactType(" Designer ")
	require.NoError(t, err)
	assert.Equal(t, ContactTypeDesigner, got)

	got, err = NormalizeContactType("CRAFTSMAN")
	require.NoError(t, err)
	assert.Equal(t, ContactTypeCraftsman, got)

	_, err = NormalizeContactType("plumber")
	assert.Error(t, err)
}

func TestUserCreditsBalanceAndColumn(t *testing.T) {
	uc := UserCredits{DesignerCredits: 3, CraftsmanCredits: 1}

	assert.Equal(t, 3, uc.Balance(ContactTypeDesigner))
	assert.Equal(t, 1, uc.Balance(ContactTypeCraftsman))

	assert.Equal(t, "designer_credits", CreditColumn(ContactTypeDesigner))
	assert.Equal(t, "craftsman_credits", CreditColumn(ContactTypeCraftsman))
}

func TestUnknownContactTypeHasNoBalanceOrColumn(t *testing.T) {
	uc := UserCredits{DesignerCredits: 3, CraftsmanCredits: 1}

	assert.Equal(t, 0, uc.Balance("plumber"))
	assert.Equal(t, "", CreditColumn("plumber"))
}
