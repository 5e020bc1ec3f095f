// Package common - Test chuyển đổi lỗi MongoDB và so khớp sentinel error.
package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải về nil, got %v", got)
	}
}

func TestConvertMongoError_KeepsNotFound(t *testing.T) {
	wrapped := fmt.Errorf("tra cứu thất bại: %w", ErrNotFound)
	got := ConvertMongoError(wrapped)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên để caller trả 404, got %v", got)
	}
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	cases := []struct {
		code int32
		want error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}
	for _, c := range cases {
		got := ConvertMongoError(mongo.CommandError{Code: c.code})
		if !errors.Is(got, c.want) {
			t.Errorf("CommandError code %d → %v, muốn %v", c.code, got, c.want)
		}
	}
}

func TestConvertMongoError_UnknownFallsBackToGeneric(t *testing.T) {
	got := ConvertMongoError(errors.New("lỗi lạ"))
	var customErr *Error
	if !errors.As(got, &customErr) {
		t.Fatalf("lỗi không nhận diện được vẫn phải là *common.Error, got %T", got)
	}
	if customErr.Code.Code != ErrCodeDatabase.Code {
		t.Errorf("mã lỗi = %q, muốn %q", customErr.Code.Code, ErrCodeDatabase.Code)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("status = %d, muốn %d", customErr.StatusCode, StatusInternalServerError)
	}
}

func TestError_Is(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, "chi tiết")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("lỗi cùng code và message phải khớp qua errors.Is bất kể Details")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("lỗi khác code không được khớp")
	}
}
