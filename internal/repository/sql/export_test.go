package sql

// ConvertError exposes convertError to tests.
func ConvertError(err error) error {
	return convertError(err)
}
