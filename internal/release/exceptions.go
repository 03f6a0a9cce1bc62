package release

import "relname/internal/logging"

// fixExceptions rewrites titles that are known to be mis-split. Only the
// first matching record applies.
func (st *state) fixExceptions() {
	title, ok := st.res.GetString("title")
	if !ok {
		return
	}
	for _, ex := range st.cat.Exceptions() {
		if title != ex.Title {
			continue
		}
		v, ok := st.res.Get(ex.Field)
		if !ok || !contains(v, ex.Value) {
			continue
		}
		if ex.Field != "title" {
			st.res.remove(ex.Field)
		}
		st.res.set("title", String(ex.Corrected))
		st.logger.Debug("title corrected",
			logging.String(logging.FieldField, ex.Field),
			logging.String("corrected", ex.Corrected),
		)
		return
	}
}
