package store

import (
	"github.com/grovetools/flux/errors"
)

// MiddlewareAPI is the capability surface handed to each middleware. Dispatch
// forwards to the fully assembled chain (not to the next middleware), so a
// middleware dispatching through it restarts the whole chain.
type MiddlewareAPI struct {
	GetState func() (State, error)
	Dispatch Dispatch
}

// Middleware wraps dispatch. Given the store capability it returns a
// next-dispatch wrapper: the returned function receives the next dispatch in
// the chain and produces the dispatch exposed to the previous link. A
// middleware may short-circuit, transform, delay or forward actions before
// calling next.
type Middleware func(api MiddlewareAPI) func(next Dispatch) Dispatch

// ApplyMiddleware creates a store enhancer that applies the given middleware
// to the store's dispatch. The first middleware is the outermost: it sees
// every action first and its result is what the caller of Dispatch receives.
func ApplyMiddleware(middlewares ...Middleware) Enhancer {
	return func(factory StoreFactory) StoreFactory {
		return func(reducer Reducer, preloaded State) (*Store, error) {
			s, err := factory(reducer, preloaded)
			if err != nil {
				return nil, err
			}

			// Placeholder installed while the chain is assembled: middleware
			// must not dispatch during its own construction.
			var dispatch Dispatch = func(action Action) (Action, error) {
				return action, errors.PrematureDispatch()
			}

			api := MiddlewareAPI{
				GetState: s.GetState,
				// Forward to whichever dispatch is currently installed so the
				// capability handed out during construction stays valid after
				// the chain replaces it.
				Dispatch: func(action Action) (Action, error) {
					return dispatch(action)
				},
			}

			chain := make([]func(next Dispatch) Dispatch, 0, len(middlewares))
			for i, middleware := range middlewares {
				if middleware == nil {
					return nil, errors.InvalidArgument("middleware", "expected each middleware to be a function").
						WithDetail("index", i)
				}
				chain = append(chain, middleware(api))
			}

			dispatch = Compose(chain...)(s.baseDispatch)
			s.dispatch = dispatch

			return s, nil
		}
	}
}
