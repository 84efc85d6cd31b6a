package entities

import (
	"math"
	"strconv"
	"strings"
)

// Payload поле data входящего запроса в том виде, в каком его раскодировал
// encoding/json: string, float64, bool, nil, []any, map[string]any.
type Payload map[string]any

// Has сообщает, что поле присутствует и истинно: nil, false, 0 и "" считаются отсутствующими.
func (p Payload) Has(key string) bool {
	return Truthy(p[key])
}

// String возвращает поле как строку; ok=false для отсутствующих и нестроковых значений.
func (p Payload) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Number возвращает числовое поле без преобразования к целому.
func (p Payload) Number(key string) (float64, bool) {
	switch x := p[key].(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Integer возвращает поле как целое число; ok=false для дробных и нечисловых значений.
func (p Payload) Integer(key string) (int64, bool) {
	return AsInteger(p[key])
}

// Clone глубоко копирует payload, вложенные объекты и массивы не разделяются с оригиналом.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	return Payload(CloneValue(map[string]any(p)).(map[string]any))
}

// CloneValue глубоко копирует значение из Payload.
func CloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, item := range x {
			res[k] = CloneValue(item)
		}
		return res
	case Payload:
		return Payload(CloneValue(map[string]any(x)).(map[string]any))
	case []any:
		res := make([]any, len(x))
		for i, item := range x {
			res[i] = CloneValue(item)
		}
		return res
	default:
		return v
	}
}

func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

func AsInteger(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) || x != math.Trunc(x) {
			return 0, false
		}
		// целые за пределами int64 остаются целыми, значение насыщается
		if x >= math.MaxInt64 {
			return math.MaxInt64, true
		}
		if x <= math.MinInt64 {
			return math.MinInt64, true
		}
		return int64(x), true
	case int:
		return int64(x), true
	case int64:
		return x, true
	default:
		return 0, false
	}
}

// FormatValue печатает значение из Payload для сообщений об ошибках.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			if item != nil {
				parts[i] = FormatValue(item)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
