package subject

// Framingham is the canonical subject model of the Framingham general
// cardiovascular risk score. The covariate names and constraints follow the
// published model definition - each field carries an explicit 'cvd' name tag
// so that the covariate names don't depend on the naming convention.
type Framingham struct {
	// Sex is the subject's biological sex.
	Sex Sex `cvd:"name=sex"`
	// Age is the subject's age in years. The score is validated for the
	// subjects older than 30 years.
	Age float64 `cvd:"name=age" validate:"gt=30"`
	// SystolicBloodPressureNotTreated is the subject's systolic blood
	// pressure in mmHg when the subject is not treated for the blood
	// pressure, zero otherwise.
	SystolicBloodPressureNotTreated float64 `cvd:"name=SBP_nt" validate:"gte=0"`
	// SystolicBloodPressureTreated is the subject's systolic blood pressure
	// in mmHg when the subject is treated for the blood pressure, zero
	// otherwise.
	SystolicBloodPressureTreated float64 `cvd:"name=SBP_t" validate:"gte=0"`
	// TotalCholesterol is the subject's total cholesterol in mg/dL.
	TotalCholesterol float64 `cvd:"name=tch" validate:"gt=0"`
	// HDLCholesterol is the subject's high-density lipoprotein cholesterol
	// in mg/dL.
	HDLCholesterol float64 `cvd:"name=HDL" validate:"gt=0"`
	// Smoking defines if the subject currently smokes.
	Smoking bool `cvd:"name=smoking"`
	// Diabetes defines if the subject is diabetic.
	Diabetes bool `cvd:"name=diabetes"`
}
