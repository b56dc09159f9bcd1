package class

// MjrConfig - major that classifies errors related with the config.
var MjrConfig Major

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "config related issues")

	registerConfigRead()
	registerConfigValue()
}

var (
	// MnrConfigRead is the 'MjrConfig' minor error classification
	// for the config read issues.
	MnrConfigRead Minor

	// ConfigReadNotFound is the 'MjrConfig', 'MnrConfigRead' error classification
	// for the read config not found issue.
	ConfigReadNotFound Class
)

func registerConfigRead() {
	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "config read issues")

	ConfigReadNotFound = MnrConfigRead.MustRegisterIndex("Not Found", "config not found while reading").Class()
}

var (
	// MnrConfigValue is the 'MjrConfig' minor error classification
	// for the config value issues.
	MnrConfigValue Minor

	// ConfigValueNil is the 'MjrConfig', 'MnrConfigValue' error classification
	// for the issues related to the nil config value.
	ConfigValueNil Class

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error classification
	// for config validation failures.
	ConfigValueInvalid Class

	// ConfigValueNaming is the 'MjrConfig', 'MnrConfigValue' error classification
	// for the issues with the naming convention value.
	ConfigValueNaming Class
)

func registerConfigValue() {
	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "config value issues")

	ConfigValueNil = MnrConfigValue.MustRegisterIndex("Nil", "provided nil config value").Class()
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "validating config failed").Class()
	ConfigValueNaming = MnrConfigValue.MustRegisterIndex("Naming", "unsupported naming convention").Class()
}
