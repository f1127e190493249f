package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MealType is the closed set of meal slots a day-plan carries.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the four slots in their display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValid reports whether t is one of the four known meal types.
func (t MealType) IsValid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealSlot holds an optional recipe assignment and its preparation state.
// Prepared is one-way within a given assignment: there is no un-prepare, but
// re-assigning a new recipe resets it.
type MealSlot struct {
	RecipeID string `bson:"recipeId,omitempty" json:"recipeId,omitempty"`
	Prepared bool   `bson:"prepared" json:"prepared"`
}

// Empty reports whether the slot has no recipe assigned.
func (s *MealSlot) Empty() bool {
	return s.RecipeID == ""
}

// DayPlan is the set of four meal slots for one calendar date. The date is
// an ISO calendar date ("2006-01-02") and serves as the unique key.
type DayPlan struct {
	Date  string                 `bson:"_id" json:"date"`
	Slots map[MealType]*MealSlot `bson:"slots" json:"slots"`
}

// NewDayPlan creates a plan for the given date with four empty slots.
func NewDayPlan(date string) *DayPlan {
	slots := make(map[MealType]*MealSlot, len(MealTypes))
	for _, t := range MealTypes {
		slots[t] = &MealSlot{}
	}
	return &DayPlan{Date: date, Slots: slots}
}

// Slot returns the slot for the given meal type, creating an empty one if a
// stored plan predates the full slot map.
func (p *DayPlan) Slot(mealType MealType) *MealSlot {
	if p.Slots == nil {
		p.Slots = make(map[MealType]*MealSlot, len(MealTypes))
	}
	slot, ok := p.Slots[mealType]
	if !ok {
		slot = &MealSlot{}
		p.Slots[mealType] = slot
	}
	return slot
}

// MealPlanStore is the ordered collection of day-plans the planner shows.
// Dates increase by one calendar day per append.
type MealPlanStore struct {
	plans []*DayPlan
	index map[string]*DayPlan
}

// NewMealPlanStore builds a store over a snapshot of day-plans, preserving
// their order.
func NewMealPlanStore(plans []*DayPlan) *MealPlanStore {
	index := make(map[string]*DayPlan, len(plans))
	for _, p := range plans {
		index[p.Date] = p
	}
	return &MealPlanStore{plans: plans, index: index}
}

// Plans returns the day-plans in order.
func (s *MealPlanStore) Plans() []*DayPlan {
	out := make([]*DayPlan, len(s.plans))
	copy(out, s.plans)
	return out
}

// Get returns the day-plan for a date or ErrDayPlanNotFound.
func (s *MealPlanStore) Get(date string) (*DayPlan, error) {
	p, ok := s.index[date]
	if !ok {
		return nil, ErrDayPlanNotFound
	}
	return p, nil
}

// GetSlot resolves a slot by date and meal type. A missing day-plan is
// ErrDayPlanNotFound; a present but unassigned slot is returned as-is.
func (s *MealPlanStore) GetSlot(date string, mealType MealType) (*MealSlot, error) {
	p, err := s.Get(date)
	if err != nil {
		return nil, err
	}
	return p.Slot(mealType), nil
}

// AssignRecipe sets a slot to the given recipe with Prepared reset. A new
// assignment over a prepared slot intentionally discards the prepared flag:
// a changed meal invalidates the prior preparation record.
func (s *MealPlanStore) AssignRecipe(date string, mealType MealType, recipeID string) error {
	p, err := s.Get(date)
	if err != nil {
		return err
	}
	slot := p.Slot(mealType)
	slot.RecipeID = recipeID
	slot.Prepared = false
	return nil
}

// MarkPrepared flips a slot's prepared flag. Marking an already-prepared
// slot is a no-op success, which is what lets repeated prepare calls avoid
// double deductions. An unassigned slot fails with ErrSlotEmpty.
func (s *MealPlanStore) MarkPrepared(date string, mealType MealType) error {
	slot, err := s.GetSlot(date, mealType)
	if err != nil {
		return err
	}
	if slot.Empty() {
		return ErrSlotEmpty
	}
	slot.Prepared = true
	return nil
}

// AppendNextDay appends a new day-plan one calendar day after the last one,
// computed with UTC date arithmetic so daylight-saving shifts can never skip
// or repeat a date. An empty store anchors to the current UTC date.
func (s *MealPlanStore) AppendNextDay() (*DayPlan, error) {
	var next string
	if len(s.plans) == 0 {
		next = time.Now().UTC().Format(isoDateLayout)
	} else {
		last := s.plans[len(s.plans)-1].Date
		d, err := parseISODate(last)
		if err != nil {
			return nil, err
		}
		next = d.AddDate(0, 0, 1).Format(isoDateLayout)
	}

	plan := NewDayPlan(next)
	s.plans = append(s.plans, plan)
	s.index[next] = plan
	return plan, nil
}

const isoDateLayout = "2006-01-02"

// parseISODate parses "YYYY-MM-DD" into a UTC midnight time. The parts are
// parsed as integers rather than through local-time date parsing, so the
// result is identical in every timezone.
func parseISODate(date string) (time.Time, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ValidISODate reports whether date is a well-formed ISO calendar date.
func ValidISODate(date string) bool {
	_, err := time.Parse(isoDateLayout, date)
	return err == nil
}
