package class

// MjrModel - major that classifies errors related with the risk models.
var MjrModel Major

func registerModelClasses() {
	MjrModel = MustRegisterMajor("Models")

	registerModelValue()
	registerModelRegistry()
	registerModelInternal()
}

/**

Model Value

*/
var (
	// MnrModelValue is the 'MjrModel' minor error classification used for
	// the scored value issues.
	MnrModelValue Minor

	// ModelValueNil is the 'MjrModel', 'MnrModelValue' error classification
	// for nil records provided to the scoring functions.
	ModelValueNil Class

	// ModelValueCovariate is the 'MjrModel', 'MnrModelValue' error classification
	// when the scored record doesn't provide a covariate required by the model.
	ModelValueCovariate Class
)

func registerModelValue() {
	MnrModelValue = MjrModel.MustRegisterMinor("Value", "issues related to the scored values")

	ModelValueNil = MnrModelValue.MustRegisterIndex("Nil", "scoring a nil record").Class()
	ModelValueCovariate = MnrModelValue.MustRegisterIndex("Covariate", "record doesn't provide a required covariate").Class()
}

/**

Model Registry

*/
var (
	// MnrModelRegistry is the 'MjrModel' minor error classification
	// on the model registry issues.
	MnrModelRegistry Minor

	// ModelAlreadyRegistered is the 'MjrModel', 'MnrModelRegistry' error classification
	// when the model is already registered under given name.
	ModelAlreadyRegistered Class

	// ModelNotRegistered is the 'MjrModel', 'MnrModelRegistry' error classification
	// when no model is registered under given name.
	ModelNotRegistered Class
)

func registerModelRegistry() {
	MnrModelRegistry = MjrModel.MustRegisterMinor("Registry", "model registry issues")

	ModelAlreadyRegistered = MnrModelRegistry.MustRegisterIndex("Already Registered", "model already registered under given name").Class()
	ModelNotRegistered = MnrModelRegistry.MustRegisterIndex("Not Registered", "no model registered under given name").Class()
}

/**

Model Internal

*/
var (
	// MnrModelInternal is the 'MjrModel' minor error classification
	// on the model definition consistency issues.
	MnrModelInternal Minor

	// ModelInternalConsistency is the 'MjrModel', 'MnrModelInternal' error classification
	// for malformed model definitions - i.e. duplicated or empty coefficient sets.
	ModelInternalConsistency Class
)

func registerModelInternal() {
	MnrModelInternal = MjrModel.MustRegisterMinor("Internal", "model definition consistency issues")

	ModelInternalConsistency = MnrModelInternal.MustRegisterIndex("Consistency", "malformed model definition").Class()
}
