package repositories

import "database/sql"

// nullableString пишет NULL вместо пустой строки для необязательных полей.
func nullableString(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func encodeIntBool(b bool) interface{} {
	if b {
		return 1
	}
	return 0
}
