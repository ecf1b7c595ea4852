package utils

import "testing"

func TestLookupReferenceMatchesSubstring(t *testing.T) {
	ref, ok := LookupReference("apple")
	if !ok {
		t.Fatal("expected a reference match for apple")
	}
	if ref.Carbs != 14.0 || ref.Protein != 0.3 || ref.Fat != 0.2 {
		t.Fatalf("unexpected apple reference: %+v", ref)
	}

	// Substring match inside a longer dish name.
	if _, ok := LookupReference("一碗白米饭"); !ok {
		t.Fatal("expected 白米饭 to match the rice keyword")
	}
}

func TestLookupReferenceLastMatchWins(t *testing.T) {
	// 番茄炒鸡蛋 contains both 鸡 (chicken) and 鸡蛋 (egg); 鸡蛋 is declared
	// later so the egg values must win.
	ref, ok := LookupReference("番茄炒鸡蛋")
	if !ok {
		t.Fatal("expected a reference match")
	}
	if ref.Protein != 13.3 {
		t.Fatalf("expected egg reference (protein 13.3), got %+v", ref)
	}
}

func TestLookupReferenceCaseInsensitive(t *testing.T) {
	ref, ok := LookupReference("Grilled CHICKEN breast")
	if !ok {
		t.Fatal("expected a reference match")
	}
	if ref.Protein != 19.3 {
		t.Fatalf("expected chicken reference, got %+v", ref)
	}
}

func TestLookupReferenceNoMatch(t *testing.T) {
	if _, ok := LookupReference("奶酪蛋糕"); ok {
		t.Fatal("expected no reference match for 奶酪蛋糕")
	}
	if _, ok := LookupReference(""); ok {
		t.Fatal("expected no reference match for empty name")
	}
}
