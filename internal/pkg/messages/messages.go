package messages

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Resolver resolves a message key plus positional arguments into a
// user-facing string for the given locale.
type Resolver interface {
	Resolve(key string, args []interface{}, locale language.Tag) string
}

// Catalog is an in-memory Resolver backed by per-locale message tables.
// Placeholders are positional, {0}, {1}, ... as in the property files the
// message keys come from.
type Catalog struct {
	supported []language.Tag
	matcher   language.Matcher
	tables    map[language.Tag]map[string]string
}

// NewCatalog creates a catalog with the built-in locales. The first
// supported locale acts as the fallback.
func NewCatalog() *Catalog {
	supported := []language.Tag{language.Spanish, language.English}
	return &Catalog{
		supported: supported,
		matcher:   language.NewMatcher(supported),
		tables: map[language.Tag]map[string]string{
			language.Spanish: {
				"curso.save.success":            "El curso {0} se ha guardado correctamente",
				"curso.save.error":              "No se pudo guardar el curso {0}",
				"curso.getAll.success":          "Cursos recuperados correctamente",
				"curso.get.success":             "Se ha recuperado el curso {0}",
				"curso.update.success":          "El curso {0} se ha actualizado correctamente",
				"curso.validate.id":             "El ID del curso no existe",
				"curso.validate.name":           "El curso {0} ya se encuentra registrado",
				"curso.validate.modality.empty": "La modalidad no puede estar vacía",
				"curso.validate.modality.error": "La modalidad {0} no es válida. Valores permitidos: Presencial o Virtual",
			},
			language.English: {
				"curso.save.success":            "Course {0} saved successfully",
				"curso.save.error":              "Course {0} could not be saved",
				"curso.getAll.success":          "Courses retrieved successfully",
				"curso.get.success":             "Course {0} retrieved successfully",
				"curso.update.success":          "Course {0} updated successfully",
				"curso.validate.id":             "Course ID does not exist",
				"curso.validate.name":           "Course {0} is already registered",
				"curso.validate.modality.empty": "Modality cannot be empty",
				"curso.validate.modality.error": "Modality {0} is not valid. Allowed values: Presencial or Virtual",
			},
		},
	}
}

// Resolve returns the message for key in the best matching locale, with
// positional arguments substituted. Unknown keys resolve to the key itself
// so a missing entry is visible instead of silent.
func (c *Catalog) Resolve(key string, args []interface{}, locale language.Tag) string {
	tag, _, _ := c.matcher.Match(locale)

	table, ok := c.tables[tag]
	if !ok {
		table = c.tables[c.supported[0]]
	}

	msg, ok := table[key]
	if !ok {
		return key
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprint(arg))
	}

	return msg
}

type localeCtxKey struct{}

// WithLocale stores the request locale in the context.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, tag)
}

// LocaleFrom returns the locale stored in the context, or Spanish when the
// request carried none.
func LocaleFrom(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeCtxKey{}).(language.Tag); ok {
		return tag
	}
	return language.Spanish
}
