package schema

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// use a single instance of Validate, it caches struct info
var RequestValidate *validator.Validate

func init() {
	RequestValidate = validator.New(validator.WithRequiredStructEnabled())

	// Function to check if a string is in the YYYY-MM-DD format
	errDate := RequestValidate.RegisterValidation("isValidDate", func(fl validator.FieldLevel) bool {
		const layout = "2006-01-02"
		value := fl.Field().String()
		_, err := time.Parse(layout, value)
		return err == nil
	})
	if errDate != nil {
		return
	}

	// Canonical dates are either the full YYYY/MM/DD form or the short MM-DD
	// form returned by the extraction collaborators.
	errCanonical := RequestValidate.RegisterValidation("isCanonicalDate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if _, err := time.Parse("2006/01/02", value); err == nil {
			return true
		}
		regex := regexp.MustCompile(`^\d{2}-\d{2}$`)
		return regex.MatchString(value)
	})
	if errCanonical != nil {
		return
	}

	errMonth := RequestValidate.RegisterValidation("isValidMonth", func(fl validator.FieldLevel) bool {
		month := fl.Field().Int()
		return month >= 1 && month <= 12
	})
	if errMonth != nil {
		return
	}
}

// UploadParams is the caller context accompanying every file upload batch.
type UploadParams struct {
	Carrier   string `json:"carrier" validate:"required" description:"Carrier code, e.g. CNC"`
	Pol       string `json:"pol" validate:"required" description:"Default Port Of Loading"`
	Pod       string `json:"pod" validate:"required" description:"Default Port Of Discharge"`
	StartDate string `json:"startDate" validate:"omitempty,isValidDate" description:"YYYY-MM-DD"`
	EndDate   string `json:"endDate" validate:"omitempty,isValidDate" description:"YYYY-MM-DD"`
}

// DateRange reports the inclusive ETD filter window, if the caller gave one.
func (p *UploadParams) DateRange() (start, end time.Time, ok bool) {
	const layout = "2006-01-02"
	if p.StartDate == "" || p.EndDate == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err1 := time.Parse(layout, p.StartDate)
	end, err2 := time.Parse(layout, p.EndDate)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ScrapeParams identifies a carrier page to fetch and the sailing month of interest.
type ScrapeParams struct {
	URL     string `json:"url" validate:"required,url" description:"Carrier schedule page"`
	Carrier string `json:"carrier" validate:"required"`
	Pol     string `json:"pol" validate:"required"`
	Pod     string `json:"pod" validate:"required"`
	Year    int    `json:"year" validate:"required,gte=2000,lte=2100"`
	Month   int    `json:"month" validate:"required,isValidMonth"`
}

// RecordFilter narrows the merged dataset view.
type RecordFilter struct {
	Carrier string `json:"carrier" validate:"omitempty"`
	Pod     string `json:"pod" validate:"omitempty"`
	Format  string `json:"format" validate:"omitempty,oneof=json csv"`
}
