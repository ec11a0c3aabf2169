package setting

// Recognized setting keys. Missing keys always resolve to defaults;
// they are never an error.
const (
	KeyWorkingDays      = "working_days"
	KeySalaryCycleStart = "salary_cycle_start"
	KeySalaryCycleEnd   = "salary_cycle_end"
	KeyTwilioAccountSID = "twilio_account_sid"
	KeyTwilioAuthToken  = "twilio_auth_token"
	KeyTwilioFromNumber = "twilio_from_number"
)

const (
	DefaultWorkingDays      = 26
	DefaultSalaryCycleStart = 1
	DefaultSalaryCycleEnd   = 31
)

type Setting struct {
	Key   string
	Value string
}
