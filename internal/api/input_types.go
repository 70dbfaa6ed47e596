package api

import (
	"github.com/alexpadev/trainR/internal/models"
	"github.com/alexpadev/trainR/internal/services"
)

// Request bodies accept the English field names and the Spanish ones used by
// the original web client. Responses only use the English names.

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type muscleGroupInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type muscleGroupPatchInput struct {
	Name     models.Optional[string] `json:"name"`
	Category models.Optional[string] `json:"category"`
}

type exerciseInput struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	MuscleGroupID uint    `json:"muscle_group_id"`
}

type exercisePatchInput struct {
	Name          models.Optional[string] `json:"name"`
	Description   models.Optional[string] `json:"description"`
	MuscleGroupID models.Optional[uint]   `json:"muscle_group_id"`
}

type exerciseSpecInput struct {
	ExerciseID   uint `json:"exercise_id"`
	Sets         *int `json:"sets"`
	Series       *int `json:"series"`
	Reps         *int `json:"reps"`
	Repeticiones *int `json:"repeticiones"`
}

func (input exerciseSpecInput) spec() services.ExerciseSpecInput {
	return services.ExerciseSpecInput{
		ExerciseID: input.ExerciseID,
		Sets:       firstSet(input.Sets, input.Series),
		Reps:       firstSet(input.Reps, input.Repeticiones),
	}
}

type mealsInput struct {
	Breakfast *string `json:"breakfast"`
	Desayuno  *string `json:"desayuno"`
	Lunch     *string `json:"lunch"`
	Comida    *string `json:"comida"`
	Snack     *string `json:"snack"`
	Merienda  *string `json:"merienda"`
	Dinner    *string `json:"dinner"`
	Cena      *string `json:"cena"`
}

func (input mealsInput) meals() models.Meals {
	return models.Meals{
		Breakfast: firstString(input.Breakfast, input.Desayuno),
		Lunch:     firstString(input.Lunch, input.Comida),
		Snack:     firstString(input.Snack, input.Merienda),
		Dinner:    firstString(input.Dinner, input.Cena),
	}
}

type planInput struct {
	MuscleGroupIDs []uint              `json:"muscle_group_ids"`
	Exercises      []exerciseSpecInput `json:"exercises"`
	Date           string              `json:"date"`
	Fecha          string              `json:"fecha"`
	mealsInput
}

func (input planInput) plan() services.PlanInput {
	exercises := make([]services.ExerciseSpecInput, 0, len(input.Exercises))
	for _, exercise := range input.Exercises {
		exercises = append(exercises, exercise.spec())
	}
	return services.PlanInput{
		MuscleGroupIDs: input.MuscleGroupIDs,
		Exercises:      exercises,
		Date:           firstNonBlank(input.Date, input.Fecha),
		Meals:          input.meals(),
	}
}

type createRoutineInput struct {
	DayOfWeek   int    `json:"day_of_week"`
	RoutineType string `json:"routine_type"`
	planInput
}

type routinePatchInput struct {
	DayOfWeek   models.Optional[int]    `json:"day_of_week"`
	RoutineType models.Optional[string] `json:"routine_type"`
}

type routineMuscleGroupInput struct {
	WeeklyRoutineID uint `json:"weekly_routine_id"`
	MuscleGroupID   uint `json:"muscle_group_id"`
}

type routineExerciseInput struct {
	WeeklyRoutineID uint `json:"weekly_routine_id"`
	exerciseSpecInput
}

type routineExercisePatchInput struct {
	Sets         models.Optional[int] `json:"sets"`
	Series       models.Optional[int] `json:"series"`
	Reps         models.Optional[int] `json:"reps"`
	Repeticiones models.Optional[int] `json:"repeticiones"`
}

func (input routineExercisePatchInput) patch() models.RoutineExercisePatch {
	return models.RoutineExercisePatch{
		Sets: input.Sets.Or(input.Series),
		Reps: input.Reps.Or(input.Repeticiones),
	}
}

type dailyEntryInput struct {
	Date            string `json:"date"`
	Fecha           string `json:"fecha"`
	WeeklyRoutineID *uint  `json:"weekly_routine_id"`
	Completed       bool   `json:"completed"`
	mealsInput
}

type dailyEntryPatchInput struct {
	WeeklyRoutineID models.Optional[uint]   `json:"weekly_routine_id"`
	Breakfast       models.Optional[string] `json:"breakfast"`
	Desayuno        models.Optional[string] `json:"desayuno"`
	Lunch           models.Optional[string] `json:"lunch"`
	Comida          models.Optional[string] `json:"comida"`
	Snack           models.Optional[string] `json:"snack"`
	Merienda        models.Optional[string] `json:"merienda"`
	Dinner          models.Optional[string] `json:"dinner"`
	Cena            models.Optional[string] `json:"cena"`
	Completed       models.Optional[bool]   `json:"completed"`
}

func (input dailyEntryPatchInput) patch() models.DailyEntryPatch {
	return models.DailyEntryPatch{
		WeeklyRoutineID: input.WeeklyRoutineID,
		Breakfast:       input.Breakfast.Or(input.Desayuno),
		Lunch:           input.Lunch.Or(input.Comida),
		Snack:           input.Snack.Or(input.Merienda),
		Dinner:          input.Dinner.Or(input.Cena),
		Completed:       input.Completed,
	}
}
