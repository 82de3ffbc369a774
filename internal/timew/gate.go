package timew

// gateInput is everything the notification gate looks at. Fields past
// enabled are only meaningful when the earlier ones allowed the query.
type gateInput struct {
	enabled   bool
	installed bool
	tracking  bool
	queryErr  error
}

type gateRule struct {
	reason  string
	applies func(gateInput) bool
	send    bool
}

// gateRules are evaluated in order; the first match wins.
var gateRules = []gateRule{
	{
		reason:  "integration disabled",
		applies: func(in gateInput) bool { return !in.enabled },
		send:    true,
	},
	{
		reason:  "timewarrior not installed",
		applies: func(in gateInput) bool { return !in.installed },
		send:    true,
	},
	{
		reason:  "timewarrior query failed",
		applies: func(in gateInput) bool { return in.queryErr != nil },
		send:    true,
	},
	{
		reason:  "no active tracking session",
		applies: func(in gateInput) bool { return !in.tracking },
		send:    false,
	},
}

func decide(in gateInput) (send bool, reason string) {
	for _, rule := range gateRules {
		if rule.applies(in) {
			return rule.send, rule.reason
		}
	}
	return true, "tracking active"
}
