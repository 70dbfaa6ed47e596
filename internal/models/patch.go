package models

// Patch types enumerate every column a partial update may touch. A field
// left unset is not written.

type MuscleGroupPatch struct {
	Name     Optional[string]
	Category Optional[string]
}

func (patch MuscleGroupPatch) IsEmpty() bool {
	return !patch.Name.Set && !patch.Category.Set
}

type ExercisePatch struct {
	Name          Optional[string]
	Description   Optional[string]
	MuscleGroupID Optional[uint]
}

func (patch ExercisePatch) IsEmpty() bool {
	return !patch.Name.Set && !patch.Description.Set && !patch.MuscleGroupID.Set
}

type WeeklyRoutinePatch struct {
	DayOfWeek   Optional[int]
	RoutineType Optional[string]
}

func (patch WeeklyRoutinePatch) IsEmpty() bool {
	return !patch.DayOfWeek.Set && !patch.RoutineType.Set
}

type RoutineExercisePatch struct {
	Sets Optional[int]
	Reps Optional[int]
}

func (patch RoutineExercisePatch) IsEmpty() bool {
	return !patch.Sets.Set && !patch.Reps.Set
}

// DailyEntryPatch may relink the entry: a set WeeklyRoutineID with a nil
// value detaches it from any routine.
type DailyEntryPatch struct {
	WeeklyRoutineID Optional[uint]
	Breakfast       Optional[string]
	Lunch           Optional[string]
	Snack           Optional[string]
	Dinner          Optional[string]
	Completed       Optional[bool]
}

func (patch DailyEntryPatch) IsEmpty() bool {
	return !patch.WeeklyRoutineID.Set && !patch.Breakfast.Set && !patch.Lunch.Set &&
		!patch.Snack.Set && !patch.Dinner.Set && !patch.Completed.Set
}

// Meals is the set of meal texts written together by plan submissions.
type Meals struct {
	Breakfast *string
	Lunch     *string
	Snack     *string
	Dinner    *string
}
