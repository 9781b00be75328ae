package services

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/marketlens/options-radar/src/models"
)

// US equities trade 9:30 AM - 4:00 PM ET, Monday through Friday. Outside
// those hours displayed prices are the final trading period's closes.

const (
	marketOpenMinute  = 9*60 + 30
	marketCloseMinute = 16 * 60
)

// CurrentMarketStatus classifies the moment returned by clock against US
// market hours.
func CurrentMarketStatus(clock func() time.Time) models.MarketStatus {
	if clock == nil {
		clock = time.Now
	}

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		// Without the tz database we cannot classify; report closed rather
		// than guess.
		log.Warnf("CurrentMarketStatus: failed to load America/New_York: %v", err)
		return models.MarketStatus{
			IsOpen:  false,
			Message: "Market status unavailable",
		}
	}

	et := clock().In(loc)

	if et.Weekday() == time.Saturday || et.Weekday() == time.Sunday {
		return models.MarketStatus{
			IsOpen:   false,
			Message:  "Market Closed (Weekend)",
			Note:     "Showing closing prices from Friday 3:55-4:00 PM ET (final trading period)",
			DataTime: "Friday 3:55-4:00 PM ET",
		}
	}

	minuteOfDay := et.Hour()*60 + et.Minute()

	switch {
	case minuteOfDay >= marketOpenMinute && minuteOfDay < marketCloseMinute:
		return models.MarketStatus{
			IsOpen:   true,
			Message:  "Market Open",
			Note:     "Displaying real-time live prices",
			DataTime: "Live",
		}
	case minuteOfDay < marketOpenMinute:
		return models.MarketStatus{
			IsOpen:   false,
			Message:  "Market Closed (Pre-Market)",
			Note:     "Showing closing prices from previous day 3:55-4:00 PM ET (final trading period)",
			DataTime: "Previous Day 3:55-4:00 PM ET",
		}
	default:
		return models.MarketStatus{
			IsOpen:   false,
			Message:  "Market Closed (After-Hours)",
			Note:     "Showing closing prices from today 3:55-4:00 PM ET (final trading period)",
			DataTime: "Today 3:55-4:00 PM ET",
		}
	}
}
