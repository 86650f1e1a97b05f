// Package configutil helps declaring Viper defaults.
package configutil

// SetDefault is an interface to abstract setting Viper defaults.
// (e.g. Allows adding a key prefix to every call to SetDefault when used with Prefix.)
type SetDefault interface {
	SetDefault(key string, value any)
}

// SetDefaultFunc implements SetDefault.
type SetDefaultFunc func(key string, value any)

// See SetDefault interface.
func (f SetDefaultFunc) SetDefault(key string, value any) {
	if f == nil {
		return
	}
	f(key, value)
}

// Prefix returns a SetDefault setting every key below section in i.
func Prefix(i SetDefault, section string) SetDefault {
	return SetDefaultFunc(func(key string, value any) {
		i.SetDefault(section+"."+key, value)
	})
}
