// Package storedotenv loads a typedenv.MapStore from .env files without
// touching the process environment. It can search upward from a starting
// directory for the nearest .env files, with closer files taking precedence.
package storedotenv
