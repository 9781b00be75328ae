package models

// Static reference data for the liquid-stock universe. Enrichment only; a
// symbol missing from these maps still produces recommendations.

var sectorBySymbol = map[StockSymbol]string{
	"AAPL": "Technology", "MSFT": "Technology", "GOOGL": "Technology", "AMZN": "Consumer",
	"META": "Technology", "NVDA": "Technology", "TSLA": "Automotive",
	"JPM": "Financial", "BAC": "Financial", "WFC": "Financial", "GS": "Financial", "MS": "Financial",
	"JNJ": "Healthcare", "UNH": "Healthcare", "PFE": "Healthcare", "ABBV": "Healthcare", "TMO": "Healthcare",
	"WMT": "Retail", "HD": "Retail", "DIS": "Entertainment", "NKE": "Consumer", "MCD": "Consumer", "SBUX": "Consumer",
	"ORCL": "Technology", "CRM": "Technology", "ADBE": "Technology", "NFLX": "Entertainment",
	"INTC": "Technology", "AMD": "Technology", "CSCO": "Technology", "IBM": "Technology",
	"BA": "Industrial", "CAT": "Industrial", "XOM": "Energy", "CVX": "Energy",
	"VZ": "Telecom", "T": "Telecom",
	"LLY": "Healthcare", "MRK": "Healthcare", "BMY": "Healthcare",
	"V": "Financial", "MA": "Financial", "PYPL": "Financial",
	"KO": "Consumer", "PEP": "Consumer", "PG": "Consumer", "COST": "Retail",
	"UPS": "Industrial", "TGT": "Retail", "QCOM": "Technology", "HON": "Industrial",
}

var companyNameBySymbol = map[StockSymbol]string{
	"AAPL": "Apple Inc.", "MSFT": "Microsoft Corp.", "GOOGL": "Alphabet Inc.",
	"AMZN": "Amazon.com Inc.", "META": "Meta Platforms Inc.", "NVDA": "NVIDIA Corp.",
	"TSLA": "Tesla Inc.", "JPM": "JPMorgan Chase", "BAC": "Bank of America",
	"WFC": "Wells Fargo", "GS": "Goldman Sachs", "MS": "Morgan Stanley",
	"JNJ": "Johnson & Johnson", "UNH": "UnitedHealth Group", "PFE": "Pfizer Inc.",
	"ABBV": "AbbVie Inc.", "TMO": "Thermo Fisher", "WMT": "Walmart Inc.",
	"HD": "Home Depot", "DIS": "Walt Disney Co.", "NKE": "Nike Inc.",
	"MCD": "McDonald's Corp.", "SBUX": "Starbucks Corp.", "ORCL": "Oracle Corp.",
	"CRM": "Salesforce Inc.", "ADBE": "Adobe Inc.", "NFLX": "Netflix Inc.",
	"INTC": "Intel Corp.", "AMD": "Advanced Micro Devices", "CSCO": "Cisco Systems",
	"IBM": "IBM Corp.", "BA": "Boeing Co.", "CAT": "Caterpillar Inc.",
	"XOM": "Exxon Mobil", "CVX": "Chevron Corp.", "VZ": "Verizon Communications",
	"T": "AT&T Inc.", "LLY": "Eli Lilly", "MRK": "Merck & Co.",
	"BMY": "Bristol Myers Squibb", "V": "Visa Inc.", "MA": "Mastercard Inc.",
	"PYPL": "PayPal Holdings", "KO": "Coca-Cola Co.", "PEP": "PepsiCo Inc.",
	"PG": "Procter & Gamble", "COST": "Costco Wholesale", "UPS": "United Parcel Service",
	"TGT": "Target Corp.", "QCOM": "Qualcomm Inc.", "HON": "Honeywell International",
}

func (s StockSymbol) Sector() string {
	if sector, ok := sectorBySymbol[StockSymbol(s.String())]; ok {
		return sector
	}

	return "Other"
}

func (s StockSymbol) CompanyName() string {
	if name, ok := companyNameBySymbol[StockSymbol(s.String())]; ok {
		return name
	}

	return s.String()
}
