// Package lib groups modules that do not fit strictly into the
// request/service/repository layers: background job processing
// (Redis/Asynq) and the email client integration (Resend).
package lib
