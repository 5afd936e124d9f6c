/*
Package theme manages named themes and resolves theme tokens in style mappings.

A token is a string value starting with domain.TokenPrefix followed by a dotted
path into the active theme, e.g. "$colors.primary" or "$typography.fontSize.lg".
Unresolvable tokens are left untouched.

The built-in "default" theme always exists and cannot be removed.
*/
package theme
