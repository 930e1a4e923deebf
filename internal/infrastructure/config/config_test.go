package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("esperava env 'development', obteve '%s'", cfg.Env)
	}
	if cfg.Review.MinScore != 1 || cfg.Review.MaxScore != 10 {
		t.Errorf("esperava escala 1-10, obteve %d-%d", cfg.Review.MinScore, cfg.Review.MaxScore)
	}
	if cfg.I18n.DefaultLanguage != "ru" {
		t.Errorf("esperava idioma padrão 'ru', obteve '%s'", cfg.I18n.DefaultLanguage)
	}
	ttl, err := cfg.JWT.AccessTTL()
	if err != nil || ttl != time.Hour {
		t.Errorf("esperava validade de 1h, obteve %v (%v)", ttl, err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("REVIEW_MAX_SCORE", "5")
	t.Setenv("MAILER_DRIVER", "amqp")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("esperava driver 'sqlite', obteve '%s'", cfg.Database.Driver)
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("esperava porta 6543, obteve %d", cfg.Database.Port)
	}
	if cfg.Review.MaxScore != 5 {
		t.Errorf("esperava nota máxima 5, obteve %d", cfg.Review.MaxScore)
	}
	if cfg.Mailer.Driver != "amqp" {
		t.Errorf("esperava mailer 'amqp', obteve '%s'", cfg.Mailer.Driver)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("produção sem segredo JWT", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "")

		if _, err := Load(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("escala de notas invertida", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("REVIEW_MIN_SCORE", "8")
		t.Setenv("REVIEW_MAX_SCORE", "3")

		if _, err := Load(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("mailer desconhecido", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("MAILER_DRIVER", "pigeon")

		if _, err := Load(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "yamdb", SSLMode: "disable"}
	expected := "host=db port=5432 user=u password=p dbname=yamdb sslmode=disable"
	if d.DSN() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, d.DSN())
	}
}
