package datagen

import (
	"fmt"
	mrand "math/rand"
	"strings"
	"sync"
	"time"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
	"Anthony", "Margaret", "Mark", "Sandra", "Steven", "Ashley", "Andrew", "Emily",
	"Arjun", "Priya", "Rahul", "Ananya", "Vikram", "Kavya", "Rohan", "Meera",
	"Aditya", "Sneha", "Karan", "Divya", "Nikhil", "Pooja", "Sanjay", "Neha",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
	"Sharma", "Verma", "Patel", "Gupta", "Singh", "Kumar", "Reddy", "Iyer",
	"Mehta", "Joshi", "Nair", "Rao", "Chopra", "Malhotra", "Agarwal", "Desai",
}

var companySuffixes = []string{
	"Pvt Ltd", "LLP", "Industries", "Enterprises", "Traders", "Solutions",
	"Exports", "Logistics", "Textiles", "Foods", "Technologies", "Group",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "rediffmail.com",
	"example.com", "company.org", "corp.net", "business.io",
}

var streetNames = []string{
	"MG Road", "Station Road", "Park Street", "Nehru Marg", "Mall Road",
	"Gandhi Nagar", "Ring Road", "Market Lane", "Industrial Area", "Link Road",
}

var cities = []string{
	"Mumbai", "Delhi", "Bengaluru", "Hyderabad", "Chennai", "Kolkata",
	"Pune", "Ahmedabad", "Jaipur", "Surat", "Lucknow", "Nagpur",
	"Indore", "Coimbatore", "Kochi", "Chandigarh",
}

var states = []string{
	"Maharashtra", "Karnataka", "Tamil Nadu", "Telangana", "West Bengal",
	"Gujarat", "Rajasthan", "Uttar Pradesh", "Kerala", "Punjab",
	"Madhya Pradesh", "Haryana", "Delhi", "Andhra Pradesh",
}

var countries = []string{
	"India", "United States", "United Kingdom", "Germany", "Singapore",
	"Australia", "United Arab Emirates", "Japan", "Canada", "France",
}

var statusWords = []string{
	"active", "inactive", "pending", "confirmed", "draft", "paid", "unpaid", "cancelled",
}

var kindWords = []string{
	"asset", "liability", "expense", "income", "equity", "debit", "credit",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"product", "service", "platform", "ledger", "invoice", "stock", "order",
	"vendor", "account", "payment", "dispatch", "warehouse", "batch", "unit",
}

// Non-crypto randomness is fine here; the output is synthetic test data.
var rngMu sync.Mutex
var rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))

func randN(n int) int {
	if n <= 0 {
		return 0
	}
	rngMu.Lock()
	v := rng.Intn(n)
	rngMu.Unlock()
	return v
}

func randomFrom(pool []string) string {
	return pool[randN(len(pool))]
}

func randomBool() bool {
	return randN(2) == 0
}

func randomPersonName() string {
	return randomFrom(firstNames) + " " + randomFrom(lastNames)
}

func randomCompanyName() string {
	return randomFrom(lastNames) + " " + randomFrom(companySuffixes)
}

func randomEmail() string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(randomFrom(firstNames)),
		strings.ToLower(randomFrom(lastNames)),
		randN(1000),
		randomFrom(emailDomains),
	)
}

func randomPhone() string {
	return fmt.Sprintf("+91 %05d %05d", 70000+randN(30000), randN(100000))
}

func randomStreetAddress() string {
	return fmt.Sprintf("%d %s", 1+randN(999), randomFrom(streetNames))
}

func randomPostcode() string {
	return fmt.Sprintf("%06d", 100000+randN(900000))
}

// randomGovCode fakes GSTIN/PAN/CIN/HSN-style alphanumeric identifiers:
// two uppercase letters followed by digits, capped at maxLen.
func randomGovCode(maxLen int) string {
	code := fmt.Sprintf("%c%c%09d", 'A'+rune(randN(26)), 'A'+rune(randN(26)), randN(1000000000))
	if maxLen > 0 && len(code) > maxLen {
		code = code[:maxLen]
	}
	return code
}

func randomSKUCode() string {
	return fmt.Sprintf("%c%c%c-%05d",
		'A'+rune(randN(26)), 'A'+rune(randN(26)), 'A'+rune(randN(26)), randN(100000))
}

func randomOTP() string {
	return fmt.Sprintf("%06d", randN(1000000))
}

func randomSentence(wordCount int) string {
	words := make([]string, wordCount)
	for i := range words {
		words[i] = randomFrom(loremWords)
	}
	s := strings.Join(words, " ")
	s = strings.ToUpper(s[:1]) + s[1:]
	return s + "."
}

func randomDescription() string {
	return randomSentence(4+randN(6)) + " " + randomSentence(4+randN(6))
}

// fillerText builds filler up to maxLen characters (caller guarantees > 0).
func fillerText(maxLen int) string {
	if maxLen > 200 {
		maxLen = 200
	}
	var b strings.Builder
	for b.Len() < maxLen {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(randomFrom(loremWords))
	}
	s := b.String()
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}

const (
	dateWindowStartYear = 2019
	dateWindowEndYear   = 2025
)

// randomDate picks a uniform calendar date in the fixed 2019-2025 window,
// formatted as an ISO-8601 date.
func randomDate() string {
	start := time.Date(dateWindowStartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(dateWindowEndYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, randN(days+1)).Format("2006-01-02")
}

// randomTimestamp picks a uniform instant in the trailing three years,
// formatted ISO-8601 with a space separator.
func randomTimestamp() string {
	now := time.Now()
	span := int(now.Sub(now.AddDate(-3, 0, 0)).Seconds())
	return now.Add(-time.Duration(randN(span)) * time.Second).Format("2006-01-02 15:04:05")
}

// randomDecimal renders a value with a bounded whole part and exactly scale
// fractional digits, trailing zeros included.
func randomDecimal(scale int) string {
	if scale <= 0 {
		scale = 2
	}
	limit := 1
	for i := 0; i < scale; i++ {
		limit *= 10
	}
	return fmt.Sprintf("%d.%0*d", randN(100000), scale, randN(limit))
}

// fakeString synthesizes a string/text value from the column name. Rules are
// checked in a single fixed order, first match wins; e.g. "state_code" hits
// the state rule, never the code rule.
func fakeString(colName string, maxLen int) string {
	name := strings.ToLower(colName)

	switch {
	case name == "name" || strings.HasSuffix(name, "_name") ||
		strings.Contains(name, "company") || strings.Contains(name, "vendor"):
		if strings.Contains(name, "company") {
			return randomCompanyName()
		}
		return randomPersonName()
	case strings.Contains(name, "email"):
		return randomEmail()
	case strings.Contains(name, "phone") || strings.Contains(name, "mobile") || strings.Contains(name, "contact"):
		return randomPhone()
	case strings.Contains(name, "address") || strings.Contains(name, "line") || strings.Contains(name, "street"):
		return randomStreetAddress()
	case strings.Contains(name, "city"):
		return randomFrom(cities)
	case strings.Contains(name, "state"):
		return randomFrom(states)
	case strings.Contains(name, "country"):
		return randomFrom(countries)
	case strings.Contains(name, "pin") || strings.Contains(name, "postal") || strings.Contains(name, "postcode"):
		return randomPostcode()
	case strings.Contains(name, "gst") || strings.Contains(name, "pan") ||
		strings.Contains(name, "hsn") || strings.Contains(name, "cin") || strings.Contains(name, "uan"):
		max := maxLen
		if max <= 0 || max > 15 {
			max = 15
		}
		return randomGovCode(max)
	case strings.Contains(name, "status"):
		return randomFrom(statusWords)
	case strings.Contains(name, "type"):
		return randomFrom(kindWords)
	case strings.Contains(name, "description") || strings.Contains(name, "notes") || strings.Contains(name, "values"):
		return randomDescription()
	case strings.Contains(name, "code") || strings.Contains(name, "sku") || strings.Contains(name, "number"):
		return randomSKUCode()
	case strings.Contains(name, "otp"):
		return randomOTP()
	}

	if maxLen > 0 {
		return fillerText(maxLen)
	}
	return randomFrom(loremWords)
}
