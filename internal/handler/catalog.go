package handler

import (
	"net/http"

	"github.com/dukerupert/techarena/internal/model"
)

type catalogJSON struct {
	TaskTypes       []model.TaskType                   `json:"task_types"`
	InstallTypes    []model.TaskType                   `json:"install_types"`
	InstallProducts map[model.ProductCategory][]string `json:"install_products"`
	OtherProducts   []string                           `json:"other_products"`
	Outcomes        []model.Outcome                    `json:"outcomes"`
}

// Catalog returns the fixed task types and product lists for the task form.
func Catalog(w http.ResponseWriter, r *http.Request) {
	out := catalogJSON{
		TaskTypes:       model.TaskTypes,
		InstallProducts: model.InstallModels,
		OtherProducts:   model.OtherProductNames,
		Outcomes:        []model.Outcome{model.OutcomeOK, model.OutcomeNOK, model.OutcomePP, model.OutcomeCancel},
	}
	for _, t := range model.TaskTypes {
		if t.HasInstallProducts() {
			out.InstallTypes = append(out.InstallTypes, t)
		}
	}
	writeJSON(w, http.StatusOK, out)
}
