package class

// MjrCommon is the common major errors classification.
var MjrCommon Major

var (
	// MnrCommonLogger is the 'MjrCommon' minor error classification
	// for logger issues.
	MnrCommonLogger Minor

	// CommonLoggerNotImplement is the 'MjrCommon', 'MnrCommonLogger' error classification
	// for loggers that doesn't implement some required interface.
	CommonLoggerNotImplement Class

	// CommonLoggerUnknownLevel is the 'MjrCommon', 'MnrCommonLogger' error classification
	// for unknown logging level.
	CommonLoggerUnknownLevel Class
)

func registerCommonClasses() {
	MjrCommon = MustRegisterMajor("Common", "common error classification")

	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger", "common logger issues")
	CommonLoggerNotImplement = MnrCommonLogger.MustRegisterIndex("Not Implement", "logger doesn't implement required interface").Class()
	CommonLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level", "unknown logging level").Class()
}
