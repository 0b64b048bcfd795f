package registry

import (
	"fmt"
	"strings"
)

const AlertType = "alert"

const prefKeySeparator = "#"

// PrefKey encodes an (alert type, backend) pair as a single sortable
// string for stores keyed by one attribute.
func PrefKey(alertType, backend string) string {
	return alertType + prefKeySeparator + backend
}

func PrefKeyPrefix(alertType string) string {
	return alertType + prefKeySeparator
}

func SplitPrefKey(key string) (alertType, backend string, err error) {
	alertType, backend, ok := strings.Cut(key, prefKeySeparator)

	if !ok || alertType == "" || backend == "" {
		return "", "", fmt.Errorf("malformed preference key %s", key)
	}

	return alertType, backend, nil
}
