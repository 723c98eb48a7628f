package utility

import (
	"errors"
	"testing"
	"time"

	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

const testSecret = "secreto-de-prueba"

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken(testSecret, "66f0000000000000000000aa", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "66f0000000000000000000aa" {
		t.Errorf("subject = %q", claims.Subject)
	}
	if claims.Issuer != "saborea" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := CreateToken(testSecret, "66f0000000000000000000aa", -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	_, err = ParseToken(testSecret, token)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("esperaba ErrTokenExpired, recibí %v", err)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := CreateToken(testSecret, "66f0000000000000000000aa", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	_, err = ParseToken("otro-secreto", token)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("esperaba ErrTokenInvalid, recibí %v", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "no.es.jwt"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("esperaba ErrTokenInvalid, recibí %v", err)
	}
}
