package domain

import (
	"encoding/json"
	"errors"
	"net/url"
)

// The checkout page hands the order to the confirmation page through a
// single percent-encoded JSON query parameter. There is no backend
// store; the URL is the whole channel.

func EncodeOrder(order Order) (string, error) {
	jsonBody, err := json.Marshal(order)
	if err != nil {
		return "", err
	}

	return url.QueryEscape(string(jsonBody)), nil
}

// DecodeOrder reverses EncodeOrder. A missing or malformed parameter
// returns a zero Order and an error; the caller renders an empty
// confirmation instead of failing.
func DecodeOrder(param string) (Order, error) {
	if param == "" {
		return Order{}, errors.New("missing order data")
	}

	raw, err := url.QueryUnescape(param)
	if err != nil {
		return Order{}, err
	}

	var order Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return Order{}, err
	}

	return order, nil
}
