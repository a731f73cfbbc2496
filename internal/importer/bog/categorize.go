package bog

import (
	"strings"
)

// mccCategories maps card MCC codes to expense categories.
var mccCategories = map[string]string{
	// Food & grocery
	"5411": "Food", "5441": "Food", "5499": "Food", "5461": "Food",
	"5812": "Food", "5814": "Food",
	"4215": "Food", // delivery apps (Wolt, Glovo)
	// Transport
	"4121": "Transport", "5541": "Transport",
	"7523": "Transport", "9399": "Transport",
	// Utilities
	"4814": "Utilities",
	// Entertainment / subscriptions / travel
	"5734": "Entertainment", "5816": "Entertainment", "5818": "Entertainment",
	"7841": "Entertainment", "7996": "Entertainment", "7922": "Entertainment",
	"7011": "Entertainment", "4722": "Entertainment", "7298": "Entertainment",
	"5732": "Entertainment",
	// Clothes
	"5691": "Clothes", "5651": "Clothes", "5661": "Clothes",
	// Home
	"5719": "Home", "5211": "Home", "5013": "Home",
	// Pets
	"5995": "Pets", "5996": "Pets",
	// Kid
	"5945": "Kid",
	// Health
	"5912": "Health",
	// Other
	"5311": "Other", "5262": "Other", "5192": "Other", "5947": "Other",
	"5169": "Other", "5993": "Other", "5992": "Other",
	"6300": "Other", "6012": "Other",
}

// merchantKeywords maps lowercase merchant-name fragments to
// categories. Checked before MCC so a specific merchant beats a
// generic code.
var merchantKeywords = map[string][]string{
	"Food": {
		"nikora", "spar", "marketi", "europroduct", "clean house",
		"mcdon", "kfc", "subway", "pizzeria", "kafe", "cafe ",
		"wrap master", "wendys", "baho", "dunkin", "ori nabiji",
		"jambo coffee", "shukura", "anna smaragdina",
		"veriko tabidze", "giorgi phochkhua", "two dzma", "magniti",
	},
	"Transport": {
		"yandex.go", "bolt taxi", "lukoil", "portal",
		"tbilisi bus", "scooter",
	},
	"Pets":      {"zoomart", "animal planet"},
	"Utilities": {"magticom", "silknet"},
	"Entertainment": {
		"steam", "google", "github", "cursor", "chatgpt", "openai",
		"youtube", "kindle", "gfn.am", "microsoft", "netflix",
		"biletebi", "gulo", "zoommer", "pulman", "pebblehost",
	},
	"Kid":   {"robolaboratoria", "top toys", "tbilisi parki"},
	"Home":  {"jysk", "amboli"},
	"Other": {"temu", "ozon", "vape room"},
}

// keywordOrder fixes the match order so a merchant hitting two
// categories' keywords always resolves the same way.
var keywordOrder = []string{
	"Food", "Transport", "Pets", "Utilities", "Entertainment",
	"Kid", "Home", "Other",
}

// knownBeneficiaries auto-categorizes outgoing transfers to regular
// recipients instead of flagging them.
var knownBeneficiaries = map[string]string{
	"dalakishvili ana": "Rent",
}

// detailRules are categorized straight off the details text, before
// any merchant matching.
var detailRules = []struct {
	fragment    string
	category    string
	description string
}{
	{"traffic penalty", "Other", "Traffic Penalty"},
	{"tbilisienergy", "Utilities", "TbilisiEnergy (electricity)"},
	{"ep georgia supply", "Utilities", "EP Georgia Supply (utilities)"},
	{"tbilisi bus", "Transport", "Tbilisi Bus"},
}

// categorize applies the rule tables in precedence order: detail
// patterns, merchant keywords, MCC code. Returns false when nothing
// matches.
func categorize(merchant, mcc, details string) (string, bool) {
	dl := strings.ToLower(details)
	for _, rule := range detailRules {
		if strings.Contains(dl, rule.fragment) {
			return rule.category, true
		}
	}

	if merchant != "" {
		ml := strings.ToLower(merchant)
		for _, category := range keywordOrder {
			for _, kw := range merchantKeywords[category] {
				if strings.Contains(ml, kw) {
					return category, true
				}
			}
		}
	}

	if cat, ok := mccCategories[mcc]; ok {
		return cat, true
	}

	return "", false
}

// fixDescription replaces raw service blurbs with a readable name.
func fixDescription(desc, details string) string {
	dl := strings.ToLower(details)
	for _, rule := range detailRules {
		if strings.Contains(dl, rule.fragment) {
			return rule.description
		}
	}

	return desc
}
