// internal/domain/homework/validate.go
package homework

// Validate checks that raw has the shape of a status endpoint response and returns
// the most recent homework entry. The endpoint lists newest entries first.
func Validate(raw any) (Record, error) {
	payload, ok := raw.(map[string]any)
	if !ok {
		return nil, NewError(KindMalformedResponse, "response is not a JSON object but %T", raw)
	}

	homeworks, ok := payload[KeyHomeworks]
	if !ok {
		return nil, NewError(KindMalformedResponse, "response has no `%s` key", KeyHomeworks)
	}
	if _, ok := payload[KeyCurrentDate]; !ok {
		return nil, NewError(KindMalformedResponse, "response has no `%s` key", KeyCurrentDate)
	}

	list, ok := homeworks.([]any)
	if !ok {
		return nil, NewError(KindInvalidListType, "`%s` in response is not a list but %T", KeyHomeworks, homeworks)
	}
	if len(list) == 0 {
		return nil, NewError(KindEmptyResult, "homework list is empty")
	}

	first, ok := list[0].(map[string]any)
	if !ok {
		return nil, NewError(KindMalformedResponse, "homework entry is not a JSON object but %T", list[0])
	}
	return Record(first), nil
}
