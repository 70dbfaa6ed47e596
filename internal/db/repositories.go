package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Catalog        *CatalogRepository
	WeeklyRoutines *WeeklyRoutineRepository
	RoutineLinks   *RoutineLinkRepository
	DailyEntries   *DailyEntryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Catalog:        NewCatalogRepository(database),
		WeeklyRoutines: NewWeeklyRoutineRepository(database),
		RoutineLinks:   NewRoutineLinkRepository(database),
		DailyEntries:   NewDailyEntryRepository(database),
	}
}
