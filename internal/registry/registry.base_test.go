// Package registry - Test đăng ký và tra cứu item.
package registry

import "testing"

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký lần đầu phải trả về isNew = true")
	}

	// Đăng ký lại cùng tên: không phải item mới
	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register lần 2 lỗi: %v", err)
	}
	if isNew {
		t.Error("đăng ký lại cùng tên phải trả về isNew = false")
	}

	got, ok := r.Get("a")
	if !ok {
		t.Fatal("Get phải tìm thấy item đã đăng ký")
	}
	if got != 2 {
		t.Errorf("Get trả về %d, muốn giá trị mới nhất 2", got)
	}

	if _, ok := r.Get("không tồn tại"); ok {
		t.Error("Get tên chưa đăng ký phải trả về false")
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("x", "giá trị")

	if !r.Unregister("x") {
		t.Error("Unregister item tồn tại phải trả về true")
	}
	if r.Unregister("x") {
		t.Error("Unregister item đã xóa phải trả về false")
	}
	if r.Count() != 0 {
		t.Errorf("Count = %d, muốn 0", r.Count())
	}
}
