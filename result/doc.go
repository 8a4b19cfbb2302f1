// Package result provides OperationResult, a passive carrier reporting the
// outcome of an operation: a success flag, an optional status code, an
// optional typed payload, optional typed details and an optional error.
//
//	r := result.Success[int, string, struct{}]("ok")
//	r.SetStatus(0)
//	fmt.Println(r) // [Operation succeded: true, ... Error information: None]
//
// The error field conventionally holds an *errors.Error from this module,
// but any error value is accepted.
package result
