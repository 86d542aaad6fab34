package main

import (
	"weightwise/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SessionModel{},
		model.WeightEntryModel{},
		model.ActivityLogModel{},
		model.BusinessProfileModel{},
		model.BusinessReviewModel{},
		model.CustomerPreferencesModel{},
		model.RecommendationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
