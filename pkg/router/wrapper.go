package router

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/fairytale-lab/backend/pkg/errorx"
	"github.com/fairytale-lab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.log)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithHTTPRequest(ctx, r)

		err := func() error {
			if r.Method != method {
				return errorx.New(errorx.BadRequest, "Not supported method %s", r.Method)
			}

			for _, m := range router.befores {
				var err error
				if ctx, err = m(ctx); err != nil {
					return err
				}
			}

			var req Request
			if err := decodeRequest(r, method, &req); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot decode the request: %v", err)
				return errorx.New(errorx.BadRequest, "Cannot decode the request")
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				return err
			}

			if err := writeJSON(w, newResponse(resp)); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
				return errorx.New(errorx.BadResponse, "Cannot write the response")
			}

			return nil
		}()

		if err != nil {
			if werr := writeJSON(w, newErrorResponse(err)); werr != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the error response: %v", werr)
			}
		}

		for _, closer := range router.closers {
			closer(ctx, err)
		}
	}
}

// decodeRequest fills the request from query parameters for GET and from the
// json body for POST. Query binding covers only string and int fields, which
// is all read endpoints need.
func decodeRequest(r *http.Request, method string, req any) error {
	if method == http.MethodGet {
		v := reflect.ValueOf(req).Elem()
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Tag.Get("json")
			queryVal := r.URL.Query().Get(name)
			if queryVal == "" {
				continue
			}

			switch v.Field(i).Kind() {
			case reflect.String:
				v.Field(i).SetString(queryVal)

			case reflect.Int:
				val, err := strconv.Atoi(queryVal)
				if err != nil {
					return err
				}
				v.Field(i).SetInt(int64(val))
			}
		}

		return nil
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if len(b) == 0 {
		return nil
	}

	return json.Unmarshal(b, req)
}

func writeJSON(w http.ResponseWriter, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
