package socketio_utils

import "strconv"

// Socket.io object payloads arrive as map[string]interface{} with all JSON
// numbers decoded as float64. These helpers pull typed fields out of them
// without panicking on absent or oddly-typed values (older clients send
// roomId as a string, for instance).

// PayloadMap returns the first handler argument as an object payload, or
// nil when the client sent none.
func PayloadMap(args []interface{}) map[string]interface{} {
	if len(args) < 1 {
		return nil
	}
	payload, ok := args[0].(map[string]interface{})
	if !ok {
		return nil
	}
	return payload
}

func GetString(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	value, _ := payload[key].(string)
	return value
}

func GetInt(payload map[string]interface{}, key string) int {
	if payload == nil {
		return 0
	}
	switch value := payload[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func GetFloat(payload map[string]interface{}, key string) float64 {
	if payload == nil {
		return 0
	}
	switch value := payload[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
