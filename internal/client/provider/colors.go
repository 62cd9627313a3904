package provider

// holidayColors maps well-known holiday names to their presentation tokens.
// Tokens are opaque to the core; the UI layer interprets them.
var holidayColors = map[string]string{
	"春节":  "from-red-600 to-amber-500",
	"元宵节": "from-orange-500 to-yellow-400",
	"清明节": "from-emerald-500 to-green-400",
	"劳动节": "from-blue-500 to-cyan-400",
	"端午节": "from-teal-500 to-emerald-400",
	"中秋节": "from-amber-500 to-orange-400",
	"国庆节": "from-red-500 to-pink-500",
	"元旦":  "from-indigo-500 to-purple-400",
}

const defaultHolidayColor = "from-violet-500 to-purple-400"

// ColorFor returns the presentation token for a holiday name.
func ColorFor(name string) string {
	if c, ok := holidayColors[name]; ok {
		return c
	}
	return defaultHolidayColor
}
