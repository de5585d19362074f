package pricing

// PayerCurrencies are the currencies a payer can settle an Aloha Pay link in.
var PayerCurrencies = []string{"ARS", "BRL", "COP", "CLP", "MXN"}

// usdRates are demo exchange rates, one USD in each payer currency.
var usdRates = map[string]float64{
	"ARS": 875,
	"BRL": 5,
	"CLP": 880,
	"COP": 4000,
	"MXN": 17,
}

func IsPayerCurrency(c string) bool {
	_, ok := usdRates[c]
	return ok
}

// ConvertUSDToLocal converts with the demo rate table. ok is false for unknown currencies.
func ConvertUSDToLocal(usd int64, currency string) (amount int64, ok bool) {
	rate, ok := usdRates[currency]
	if !ok {
		return 0, false
	}
	return int64(float64(usd)*rate + 0.5), true
}
