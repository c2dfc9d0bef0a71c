package budget

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbudget/engine/domain/entity"
)

var (
	rentID      = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	groceriesID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	vacationID  = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	billsID     = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	lifeID      = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
)

func sampleInput() entity.MonthBudgetInput {
	return entity.MonthBudgetInput{
		Month: "2026-08",
		Groups: []entity.CategoryGroup{
			{
				ID:   billsID,
				Name: "Bills",
				Categories: []entity.Category{
					{ID: rentID, Name: "Rent"},
				},
			},
			{
				ID:   lifeID,
				Name: "Everyday",
				Categories: []entity.Category{
					{ID: groceriesID, Name: "Groceries"},
					{ID: vacationID, Name: "Vacation"},
				},
			},
		},
		Allocations: map[uuid.UUID]int64{
			rentID:      200_000,
			groceriesID: 55_000,
		},
		Activity: map[uuid.UUID]int64{
			rentID:      -200_000,
			groceriesID: -42_500,
		},
		TotalIncome: 450_000,
	}
}

func TestCalculateReadyToAssign(t *testing.T) {
	state := Calculate(sampleInput())

	// 450000 income - 255000 allocated - 0 overspent carried in.
	assert.Equal(t, int64(195_000), state.ReadyToAssign)
	assert.Equal(t, int64(255_000), state.TotalAllocated)
	assert.Equal(t, int64(-242_500), state.TotalActivity)
	assert.Equal(t, int64(0), state.TotalOverspent)
}

func TestCalculateCategoryAvailability(t *testing.T) {
	state := Calculate(sampleInput())

	require.Len(t, state.Groups, 2)
	require.Len(t, state.Groups[0].Categories, 1)
	require.Len(t, state.Groups[1].Categories, 2)

	rent := state.Groups[0].Categories[0]
	assert.Equal(t, int64(0), rent.Available)

	groceries := state.Groups[1].Categories[0]
	assert.Equal(t, int64(12_500), groceries.Available)

	// Vacation has no allocation, activity, or carry-forward entries at all.
	vacation := state.Groups[1].Categories[1]
	assert.Equal(t, int64(0), vacation.Allocated)
	assert.Equal(t, int64(0), vacation.Available)
	assert.Nil(t, vacation.TargetProgress)
}

func TestCalculateGroupSumsMatchCategorySums(t *testing.T) {
	state := Calculate(sampleInput())

	var categoryTotal, groupTotal int64
	for _, group := range state.Groups {
		groupTotal += group.Available
		for _, category := range group.Categories {
			categoryTotal += category.Available
		}
	}
	assert.Equal(t, categoryTotal, groupTotal)
}

func TestCalculateIsIdempotent(t *testing.T) {
	input := sampleInput()
	assert.Equal(t, Calculate(input), Calculate(input))
}

func TestCalculateEmptyMonth(t *testing.T) {
	state := Calculate(entity.MonthBudgetInput{
		Month:              "2026-01",
		TotalIncome:        120_000,
		OverspentLastMonth: 20_000,
	})

	assert.Empty(t, state.Groups)
	assert.Equal(t, int64(0), state.TotalAllocated)
	assert.Equal(t, int64(0), state.TotalActivity)
	assert.Equal(t, int64(0), state.TotalOverspent)
	assert.Equal(t, int64(100_000), state.ReadyToAssign)
}

func TestCalculateNegativeAllocationIsNotClamped(t *testing.T) {
	input := sampleInput()
	input.Allocations[vacationID] = -30_000 // reclaiming funds

	state := Calculate(input)

	vacation := state.Groups[1].Categories[1]
	assert.Equal(t, int64(-30_000), vacation.Allocated)
	assert.Equal(t, int64(-30_000), vacation.Available)
	assert.Equal(t, int64(225_000), state.TotalAllocated)
	assert.Equal(t, int64(30_000), state.TotalOverspent)
}

func TestCalculateOverspendingTotals(t *testing.T) {
	input := sampleInput()
	input.Activity[groceriesID] = -80_000 // spent past the 55000 allocation

	state := Calculate(input)

	groceries := state.Groups[1].Categories[0]
	assert.Equal(t, int64(-25_000), groceries.Available)
	assert.Equal(t, int64(25_000), state.TotalOverspent)
}

func TestCalculateCarryForward(t *testing.T) {
	input := sampleInput()
	input.CarryForwards = map[uuid.UUID]int64{vacationID: 40_000}

	state := Calculate(input)

	vacation := state.Groups[1].Categories[1]
	assert.Equal(t, int64(40_000), vacation.CarryForward)
	assert.Equal(t, int64(40_000), vacation.Available)
}

func TestTargetProgress(t *testing.T) {
	tests := []struct {
		name     string
		target   *entity.CategoryTarget
		activity int64
		carry    int64
		alloc    int64
		want     *int
	}{
		{
			name: "monthly target partially spent",
			target: &entity.CategoryTarget{
				Amount: 50_000,
				Type:   entity.TargetTypeMonthly,
			},
			activity: -25_000,
			want:     intPtr(50),
		},
		{
			name: "monthly target overspent caps at 100",
			target: &entity.CategoryTarget{
				Amount: 50_000,
				Type:   entity.TargetTypeMonthly,
			},
			activity: -75_000,
			want:     intPtr(100),
		},
		{
			name: "savings goal measures available balance",
			target: &entity.CategoryTarget{
				Amount: 100_000,
				Type:   entity.TargetTypeSavingsGoal,
			},
			alloc: 10_000,
			carry: 23_000,
			want:  intPtr(33),
		},
		{
			name: "savings goal with negative available reports zero",
			target: &entity.CategoryTarget{
				Amount: 100_000,
				Type:   entity.TargetTypeSavingsGoal,
			},
			activity: -5_000,
			want:     intPtr(0),
		},
		{
			name: "no target",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catID := uuid.New()
			input := entity.MonthBudgetInput{
				Month: "2026-03",
				Groups: []entity.CategoryGroup{
					{
						ID:   uuid.New(),
						Name: "Group",
						Categories: []entity.Category{
							{ID: catID, Name: "Category", Target: tt.target},
						},
					},
				},
				Allocations:   map[uuid.UUID]int64{catID: tt.alloc},
				Activity:      map[uuid.UUID]int64{catID: tt.activity},
				CarryForwards: map[uuid.UUID]int64{catID: tt.carry},
			}

			state := Calculate(input)
			got := state.Groups[0].Categories[0].TargetProgress
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestCalculateDoesNotMutateInput(t *testing.T) {
	input := sampleInput()
	before := len(input.Allocations)

	Calculate(input)

	assert.Len(t, input.Allocations, before)
	assert.Equal(t, "Bills", input.Groups[0].Name)
}

func intPtr(v int) *int { return &v }
