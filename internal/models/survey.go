package models

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Survey departments. Submissions outside this set are rejected;
// records that somehow lack one are bucketed under "Unknown" when aggregating.
const (
	DepartmentHR         = "HR"
	DepartmentSafety     = "Safety"
	DepartmentCGPP       = "CGPP"
	DepartmentProduction = "Production"
)

var Departments = []string{
	DepartmentHR,
	DepartmentSafety,
	DepartmentCGPP,
	DepartmentProduction,
}

func ValidDepartment(department string) bool {
	for _, d := range Departments {
		if d == department {
			return true
		}
	}
	return false
}

// Survey is one submitted satisfaction survey. Ratings map question id to
// the 1-5 answer; in MongoDB the map is persisted as a JSON text blob and
// decoded on read (see repository.SurveyRepo), so the model carries it as a
// plain map.
type Survey struct {
	ID           bson.ObjectID `json:"id"`
	UserID       bson.ObjectID `json:"user_id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Department   string        `json:"department"`
	Ratings      map[int]int   `json:"ratings"`
	FinalComment string        `json:"final_comment"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Rating unmarshals a survey answer from either a JSON number or a numeric
// string. The web form submits select values as strings ("5"), API clients
// send numbers; both are parsed here and anything else is rejected.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("rating must be numeric, got %s", data)
	}
	*r = Rating(n)
	return nil
}
