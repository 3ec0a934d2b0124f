package xslog

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Interval(interval time.Duration) slog.Attr {
	const intervalKey = "interval"
	return slog.Duration(intervalKey, interval)
}

func URL(u string) slog.Attr {
	const urlKey = "url"
	return slog.String(urlKey, u)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func EventType(t string) slog.Attr {
	const eventTypeKey = "event_type"
	return slog.String(eventTypeKey, t)
}

func OrderID(id string) slog.Attr {
	const orderIDKey = "of_id"
	return slog.String(orderIDKey, id)
}

func Strategy(s string) slog.Attr {
	const strategyKey = "strategy"
	return slog.String(strategyKey, s)
}
