package store

import (
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware returns a middleware that logs every dispatched action at
// debug level, and any dispatch failure at error level. A nil entry falls
// back to the standard logger.
func LoggingMiddleware(log *logrus.Entry) Middleware {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return func(api MiddlewareAPI) func(next Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(action Action) (Action, error) {
				log.WithField("type", action.Type).Debug("dispatching action")

				result, err := next(action)
				if err != nil {
					log.WithError(err).WithField("type", action.Type).Error("dispatch failed")
					return result, err
				}

				log.WithField("type", action.Type).Debug("action applied")
				return result, nil
			}
		}
	}
}
