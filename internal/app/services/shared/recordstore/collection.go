package recordstore

import (
	"hospital-booking-service/internal/pkg/constvars"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// resetCollection points dst at an empty, non-nil slice.
func resetCollection(dst interface{}) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	elem := v.Elem()
	if elem.Kind() == reflect.Slice {
		elem.Set(reflect.MakeSlice(elem.Type(), 0, 0))
		return
	}
	elem.Set(reflect.Zero(elem.Type()))
}

// decodeCollection never fails: absent or malformed text yields an empty
// collection and a warning.
func decodeCollection(log *zap.Logger, name string, raw []byte, dst interface{}) {
	resetCollection(dst)
	if strings.TrimSpace(string(raw)) == "" {
		return
	}

	err := json.Unmarshal(raw, dst)
	if err != nil {
		log.Warn("recordStore malformed collection treated as empty",
			zap.String(constvars.LoggingCollectionKey, name),
			zap.Error(err),
		)
		resetCollection(dst)
		return
	}

	v := reflect.ValueOf(dst).Elem()
	if v.Kind() == reflect.Slice && v.IsNil() {
		resetCollection(dst)
	}
}

func encodeCollection(records interface{}) ([]byte, error) {
	v := reflect.ValueOf(records)
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice && v.IsNil() {
		return []byte("[]"), nil
	}
	return json.Marshal(records)
}
