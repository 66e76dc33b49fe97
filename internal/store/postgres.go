package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"cvpdf/internal/cv"
)

// Postgres reads résumé data from the administration site's tables.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool
func (db *Postgres) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const profileQuery = `
	SELECT idperfil, descripcionperfil, apellidos, nombres, nacionalidad,
	       lugarnacimiento, fechanacimiento, numerocedula, estadocivil,
	       licenciaconducir, telefonoconvencional, telefonofijo,
	       direcciontrabajo, direcciondomiciliaria, sitioweb, fotoperfil
	FROM datospersonales
	WHERE perfilactivo = 1
	ORDER BY idperfil
	LIMIT 1`

// Load reads the first active profile and its visible records. The record
// sections are queried concurrently.
func (db *Postgres) Load(ctx context.Context) (*cv.Data, error) {
	profile, err := db.profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &cv.Data{}, nil
	}

	data := &cv.Data{Profile: profile}
	id := profile.ID

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Experience, err = db.experience(gCtx, id)
		return err
	})
	g.Go(func() (err error) {
		data.Courses, err = db.courses(gCtx, id)
		return err
	})
	g.Go(func() (err error) {
		data.Recognitions, err = db.recognitions(gCtx, id)
		return err
	})
	g.Go(func() (err error) {
		data.AcademicProducts, err = db.academicProducts(gCtx, id)
		return err
	})
	g.Go(func() (err error) {
		data.LaborProducts, err = db.laborProducts(gCtx, id)
		return err
	})
	g.Go(func() (err error) {
		data.Garage, err = db.garage(gCtx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &LoadError{Source: "database", Message: "failed to load records", Cause: err}
	}
	return data, nil
}

func (db *Postgres) profile(ctx context.Context) (*cv.Profile, error) {
	var p cv.Profile
	var birthDate *time.Time
	var licence, phone, landline, work, website, photo *string
	err := db.pool.QueryRow(ctx, profileQuery).Scan(
		&p.ID, &p.Tagline, &p.Surnames, &p.GivenNames, &p.Nationality,
		&p.Birthplace, &birthDate, &p.NationalID, &p.MaritalStatus,
		&licence, &phone, &landline,
		&work, &p.HomeAddress, &website, &photo,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &LoadError{Source: "database", Message: "failed to load active profile", Cause: err}
	}

	p.Active = true
	p.BirthDate = cv.DatePtr(birthDate)
	p.DrivingLicence = deref(licence)
	p.Phone = deref(phone)
	p.Landline = deref(landline)
	p.WorkAddress = deref(work)
	p.Website = deref(website)
	p.Photo = deref(photo)
	return &p, nil
}

func (db *Postgres) experience(ctx context.Context, profileID int) ([]cv.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT cargodesempenado, nombrempresa, lugarempresa, fechainiciogestion,
		        fechafingestion, descripcionfunciones
		 FROM experiencialaboral
		 WHERE idperfilconqueestaactivo = $1 AND activarparaqueseveaenfront
		 ORDER BY idexperiencialaboral`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer rows.Close()

	var out []cv.Experience
	for rows.Next() {
		var (
			e          cv.Experience
			start, end *time.Time
		)
		if err := rows.Scan(&e.Role, &e.Company, &e.Location, &start, &end, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		e.Start, e.End = cv.DatePtr(start), cv.DatePtr(end)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (db *Postgres) courses(ctx context.Context, profileID int) ([]cv.Course, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT nombrecurso, fechainicio, fechafin, totalhoras, descripcioncurso,
		        entidadpatrocinadora
		 FROM cursosrealizados
		 WHERE idperfilconqueestaactivo = $1 AND activarparaqueseveaenfront
		 ORDER BY idcursorealizado`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var out []cv.Course
	for rows.Next() {
		var (
			c          cv.Course
			start, end *time.Time
		)
		if err := rows.Scan(&c.Name, &start, &end, &c.Hours, &c.Description, &c.Sponsor); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		c.Start, c.End = cv.DatePtr(start), cv.DatePtr(end)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (db *Postgres) recognitions(ctx context.Context, profileID int) ([]cv.Recognition, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT tiporeconocimiento, fechareconocimiento, descripcionreconocimiento,
		        entidadpatrocinadora
		 FROM reconocimientos
		 WHERE idperfilconqueestaactivo = $1 AND activarparaqueseveaenfront
		 ORDER BY idreconocimiento`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recognitions: %w", err)
	}
	defer rows.Close()

	var out []cv.Recognition
	for rows.Next() {
		var (
			r    cv.Recognition
			date *time.Time
		)
		if err := rows.Scan(&r.Kind, &date, &r.Description, &r.Sponsor); err != nil {
			return nil, fmt.Errorf("failed to scan recognition: %w", err)
		}
		r.Date = cv.DatePtr(date)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (db *Postgres) academicProducts(ctx context.Context, profileID int) ([]cv.AcademicProduct, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT nombrerecurso, clasificador, descripcion
		 FROM productosacademicos
		 WHERE idperfilconqueestaactivo = $1 AND activarparaqueseveaenfront
		 ORDER BY idproductoacademico`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query academic products: %w", err)
	}
	defer rows.Close()

	var out []cv.AcademicProduct
	for rows.Next() {
		var a cv.AcademicProduct
		if err := rows.Scan(&a.Name, &a.Classifier, &a.Description); err != nil {
			return nil, fmt.Errorf("failed to scan academic product: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (db *Postgres) laborProducts(ctx context.Context, profileID int) ([]cv.LaborProduct, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT nombreproducto, fechaproducto, descripcion
		 FROM productoslaborales
		 WHERE idperfilconqueestaactivo = $1 AND activarparaqueseveaenfront
		 ORDER BY idproductolaboral`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query labor products: %w", err)
	}
	defer rows.Close()

	var out []cv.LaborProduct
	for rows.Next() {
		var (
			l    cv.LaborProduct
			date *time.Time
		)
		if err := rows.Scan(&l.Name, &date, &l.Description); err != nil {
			return nil, fmt.Errorf("failed to scan labor product: %w", err)
		}
		l.Date = cv.DatePtr(date)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (db *Postgres) garage(ctx context.Context, profileID int) ([]cv.GarageItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT nombreproducto, valordelbien, estadoproducto, descripcion
		 FROM ventagarage
		 WHERE idperfilconqueestaactivo = $1 AND activarparaqueseveaenfront
		   AND estadoproducto <> $2
		 ORDER BY idventagarage`,
		profileID, cv.StatusSold,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query garage sale: %w", err)
	}
	defer rows.Close()

	var out []cv.GarageItem
	for rows.Next() {
		var g cv.GarageItem
		if err := rows.Scan(&g.Name, &g.Value, &g.Status, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan garage item: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
