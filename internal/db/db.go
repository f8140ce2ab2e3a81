package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dailydiet/internal/auth"
	"dailydiet/internal/meal"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError lets stores detect unique violations as ErrDuplicatedKey.
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&meal.Meal{},
	); err != nil {
		return err
	}

	// Owner FK; AutoMigrate alone does not emit it for plain-column models.
	if err := gdb.Exec(`
do $$ begin
  if not exists (select 1 from pg_constraint where conname = 'fk_meals_user') then
    alter table meals add constraint fk_meals_user foreign key (user_id) references users(id);
  end if;
end $$;
`).Error; err != nil {
		return err
	}

	// Helpful indexes for the owner-scoped list and the metrics path.
	stmts := []string{
		`create index if not exists idx_meals_user_date on meals(user_id, date);`,
		`create index if not exists idx_meals_user_diet on meals(user_id, is_diet);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
